package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/tmc/langchaingo/llms/openai"

	"kpi_platform/internal/database"
	"kpi_platform/internal/handlers"
	"kpi_platform/internal/repositories"
	"kpi_platform/internal/routes"
	"kpi_platform/internal/services"
)

const defaultPort = 8000

const chatModel = "gpt-4o"

func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = defaultPort
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY not found in environment variables")
	}

	pool, err := database.Connect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(chatModel),
	)
	if err != nil {
		log.Fatalf("failed to initialize LLM client: %v", err)
	}

	// Dependency injection
	schemaRepo := repositories.NewSchemaRepository(pool)
	queryRepo := repositories.NewQueryRepository(pool)
	kpiRepo := repositories.NewKPIRepository(pool)

	sessions := services.NewSessionManager()
	chatService := services.NewChatService(llm, sessions)
	agentService, err := services.NewAgentService(llm, schemaRepo, queryRepo)
	if err != nil {
		log.Fatalf("failed to build SQL agent: %v", err)
	}

	chatHandler := handlers.NewChatHandler(chatService)
	agentHandler := handlers.NewAgentHandler(agentService)
	kpiHandler := handlers.NewKPIHandler(kpiRepo)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	routes.RegisterRoutes(router, chatHandler, agentHandler, kpiHandler)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second,
	}
}
