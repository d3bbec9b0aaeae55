package roles

import (
	"reflect"
	"testing"
)

func TestInferProfile_FullStackOrdering(t *testing.T) {
	got := InferProfile([]string{"React", "FastAPI"})
	want := []string{RoleFullStack, RoleBackend}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestInferProfile_ReactAloneIsNotFullStack(t *testing.T) {
	got := InferProfile([]string{"React"})
	for _, r := range got {
		if r == RoleFullStack {
			t.Fatalf("React alone should not infer full-stack: %v", got)
		}
	}
}

func TestInferProfile_NoRoles(t *testing.T) {
	if got := InferProfile([]string{"Java"}); len(got) != 0 {
		t.Fatalf("expected no roles, got %v", got)
	}
	if got := InferProfile(nil); len(got) != 0 {
		t.Fatalf("expected no roles for nil input, got %v", got)
	}
}

func TestVariantDivergence(t *testing.T) {
	// SQL triggers Backend only in the chat variant.
	profileRoles := toSet(InferProfile([]string{"SQL"}))
	chatRoles := toSet(InferChat([]string{"SQL"}))

	if profileRoles[RoleBackend] {
		t.Fatal("profile variant must not infer Backend from SQL alone")
	}
	if !chatRoles[RoleBackend] {
		t.Fatal("chat variant must infer Backend from SQL")
	}

	// Machine Learning triggers the LLM role only in the chat variant.
	if toSet(InferProfile([]string{"Machine Learning"}))[RoleLLM] {
		t.Fatal("profile variant must not infer LLM role from Machine Learning")
	}
	if !toSet(InferChat([]string{"Machine Learning"}))[RoleLLM] {
		t.Fatal("chat variant must infer LLM role from Machine Learning")
	}

	// Data Science triggers the data role only in the chat variant.
	if toSet(InferProfile([]string{"Data Science"}))[RoleData] {
		t.Fatal("profile variant must not infer data role from Data Science")
	}
	if !toSet(InferChat([]string{"Data Science"}))[RoleData] {
		t.Fatal("chat variant must infer data role from Data Science")
	}
}

func TestInferChat_AllRules(t *testing.T) {
	got := InferChat([]string{"React", "FastAPI", "Docker", "Pandas", "LangChain"})
	want := []string{RoleFullStack, RoleBackend, RoleDevOps, RoleData, RoleLLM}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
