package ai

// knowledgeBase is the skills reference text handed to the model as context.
// It is inlined into the prompt rather than retrieved from a vector store.
const knowledgeBase = `# Skills Knowledge Base

## Programming Languages
- Python: backend development, data analysis, scripting, ML.
- JavaScript: frontend development, React, Node.js.
- TypeScript: typed JavaScript for large-scale apps.
- Java: backend services, enterprise apps.
- SQL: data querying, relational databases.

## Frameworks & Libraries
- React: building SPA frontends.
- Node.js & Express: backend APIs.
- FastAPI: high performance async Python APIs.
- Django: full-stack web framework.
- LangChain: LLM apps, RAG, chains.
- Pandas: data analysis in Python.
- NumPy: numerical computing.

## Cloud & DevOps
- AWS: EC2, S3, Lambda, RDS, CloudWatch.
- Azure: App Service, Functions, Cosmos DB.
- GCP: Cloud Run, GKE, BigQuery.
- Docker: containerization.
- Kubernetes: container orchestration.
- CI/CD: GitHub Actions, Jenkins, GitLab CI.

## Databases
- MongoDB: NoSQL document DB.
- PostgreSQL: relational DB.
- MySQL: relational DB.
- SQLite: lightweight embedded DB.
- ChromaDB: vector store for embeddings.

## Other
- REST APIs, GraphQL APIs.
- Microservices.
- Unit testing, integration testing.
- MLOps, model serving.
- Agile / Scrum.`

const systemPrompt = `You are an AI career and skills assistant that BOTH chats naturally and extracts skills.

Your job for each user message:
1. Read the user message and the skills knowledge base context.
2. Produce a friendly, concise response that:
   - acknowledges what the user said
   - highlights the key skills you see
   - can suggest job roles, learning paths, or next steps
   - can ask a follow-up question to keep the conversation going.
3. Extract SKILLS from the message (technical and soft skills).

Return a JSON object with exactly these keys:
{
  "assistant_response": string,
  "skills": [
    {
      "name": string,
      "category": string,
      "confidence": number,
      "evidence": string
    }
  ]
}

VERY IMPORTANT:
- Output MUST be VALID JSON ONLY.
- Do NOT include markdown, explanations, or any text outside the JSON.`

func buildPrompt(message string) string {
	return systemPrompt + "\n\n[CONTEXT]\n" + knowledgeBase + "\n\n[USER MESSAGE]\n" + message
}
