package skill

import (
	"strings"
	"testing"
)

func TestDefaultDefinitions_NoAliasCollisions(t *testing.T) {
	if _, err := NewDictionary(DefaultDefinitions()); err != nil {
		t.Fatalf("default catalog must validate: %v", err)
	}
}

func TestNewDictionary_RejectsSharedAlias(t *testing.T) {
	_, err := NewDictionary([]Definition{
		{Name: "Go", Category: "Programming Language", Aliases: []string{"go", "golang"}},
		{Name: "Golang", Category: "Programming Language", Aliases: []string{"golang"}},
	})
	if err == nil {
		t.Fatal("expected alias collision error")
	}
	if !strings.Contains(err.Error(), "golang") {
		t.Fatalf("error should name the alias: %v", err)
	}
}

func TestNewDictionary_RejectsDuplicateName(t *testing.T) {
	_, err := NewDictionary([]Definition{
		{Name: "Go", Category: "Programming Language", Aliases: []string{"go"}},
		{Name: "Go", Category: "Programming Language", Aliases: []string{"golang"}},
	})
	if err == nil {
		t.Fatal("expected duplicate name error")
	}
}

func TestNewDictionary_RejectsEmptyAliases(t *testing.T) {
	_, err := NewDictionary([]Definition{
		{Name: "Go", Category: "Programming Language", Aliases: nil},
	})
	if err == nil {
		t.Fatal("expected empty alias set error")
	}
}

func TestExtend_DoesNotMutateReceiver(t *testing.T) {
	base := MustDefaultDictionary()
	baseLen := base.Len()

	ext, err := base.Extend(Definition{Name: "Terraform", Category: "DevOps", Aliases: []string{"terraform"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if base.Len() != baseLen {
		t.Fatalf("receiver mutated: %d -> %d", baseLen, base.Len())
	}
	if ext.Len() != baseLen+1 {
		t.Fatalf("expected %d definitions, got %d", baseLen+1, ext.Len())
	}

	got := ext.Extract("we manage infra with terraform")
	if len(got) != 1 || got[0].Name != "Terraform" {
		t.Fatalf("extension should be matchable, got %+v", got)
	}
}

func TestExtend_RejectsCollisionWithDefaults(t *testing.T) {
	base := MustDefaultDictionary()
	if _, err := base.Extend(Definition{Name: "Py", Category: "Other", Aliases: []string{"py"}}); err == nil {
		t.Fatal("expected collision with built-in alias")
	}
}
