package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/agents"
	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/tools"

	"kpi_platform/internal/repositories"
)

const (
	// Default number of example rows a query may return unless the user asks
	// for more.
	agentTopK = 5

	agentMaxIterations = 10
)

const agentPromptPrefix = `You are an agent designed to interact with a SQL database.
Given an input question, create a syntactically correct PostgreSQL query to run,
then look at the results of the query and return the answer. Unless the user
specifies a specific number of examples they wish to obtain, always limit your
query to at most %d results.

You can order the results by a relevant column to return the most interesting
examples in the database. Never query for all the columns from a specific table,
only ask for the relevant columns given the question.

You MUST double check your query before executing it. If you get an error while
executing a query, rewrite the query and try again.

DO NOT make any DML statements (INSERT, UPDATE, DELETE, DROP etc.) to the
database.

To start you should ALWAYS look at the tables in the database to see what you
can query. Do NOT skip this step.

Then you should query the schema of the most relevant tables.

TOOLS:
------

You have access to the following tools:

{{.tool_descriptions}}`

type AgentRequest struct {
	Question string `json:"question" binding:"required"`
}

type AgentAnswer struct {
	RunID    uuid.UUID `json:"run_id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
}

// AgentService answers natural-language questions by letting the model
// inspect the schema and run read-only queries through its toolkit. Query
// retries happen inside the agent's own reasoning loop, bounded by the max
// iteration count.
type AgentService struct {
	executor chains.Chain
}

func NewAgentService(llm llms.Model, schemaRepo *repositories.SchemaRepository, queryRepo *repositories.QueryRepository) (*AgentService, error) {
	toolkit := []tools.Tool{
		ListTablesTool{schemaRepo: schemaRepo},
		TableSchemaTool{schemaRepo: schemaRepo},
		QueryTool{queryRepo: queryRepo, maxRows: agentTopK},
	}

	executor, err := agents.Initialize(
		llm,
		toolkit,
		agents.ZeroShotReactDescription,
		agents.WithMaxIterations(agentMaxIterations),
		agents.WithPromptPrefix(fmt.Sprintf(agentPromptPrefix, agentTopK)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQL agent: %w", err)
	}

	return &AgentService{executor: executor}, nil
}

// Ask runs the agent loop for one question.
func (s *AgentService) Ask(ctx context.Context, question string) (*AgentAnswer, error) {
	runID := uuid.New()
	log.Printf("Agent run %s: %q", runID, question)

	answer, err := chains.Run(ctx, s.executor, question)
	if err != nil {
		return nil, fmt.Errorf("agent run failed: %w", err)
	}

	return &AgentAnswer{
		RunID:    runID,
		Question: question,
		Answer:   answer,
	}, nil
}
