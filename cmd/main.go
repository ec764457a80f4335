package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"Yatra-App/internal/database"
	"Yatra-App/internal/domain/repository"
	"Yatra-App/internal/domain/service"
	"Yatra-App/internal/handler"
	"Yatra-App/internal/infrastructure/ai"
	infraDB "Yatra-App/internal/infrastructure/database"
	"Yatra-App/internal/infrastructure/firestore"
	"Yatra-App/internal/infrastructure/notify"
	repoImpl "Yatra-App/internal/repository"
	"Yatra-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	ctx := context.Background()

	// スポットデータソースの選択（Supabase → PostgreSQL → インメモリの順で試す）
	attractionsRepo := setupAttractionsRepository()

	// AIプランジェネレーターの選択
	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	geminiClient := ai.NewGeminiClient(geminiAPIKey)

	var planRepo repository.PlanGenerationRepository
	if geminiAPIKey != "" {
		planRepo = ai.NewGeminiPlanRepository(geminiClient)
		fmt.Println("✅ Gemini plan generator enabled")
	} else {
		planRepo = repoImpl.NewMockPlanRepository()
		fmt.Println("⚠️  GEMINI_API_KEY not set, using mock plan generator")
	}

	// 共有スナップショットストア（Firestoreが未設定なら共有機能なしで起動）
	var shareRepo *repoImpl.FirestoreShareRepository
	if projectID := os.Getenv("FIRESTORE_PROJECT_ID"); projectID != "" {
		fsClient, err := firestore.NewFirestoreClient(ctx, projectID)
		if err != nil {
			log.Printf("⚠️ Firestore初期化失敗、共有機能なしで起動: %v", err)
		} else {
			defer fsClient.Close()
			shareRepo = repoImpl.NewFirestoreShareRepository(fsClient.GetClient())
		}
	} else {
		fmt.Println("⚠️  FIRESTORE_PROJECT_ID not set, itinerary sharing disabled")
	}

	// コアサービスの初期化
	notifier := notify.NewToastNotifier()
	builder := service.NewItineraryBuilder()
	projection := service.NewDefaultMapProjection()
	pinBoard := service.NewPinBoard()

	itineraryUseCase := usecase.NewItineraryUseCase(builder, planRepo, shareRepo, notifier)
	exploreUseCase := usecase.NewExploreUseCase(attractionsRepo, projection, pinBoard, itineraryUseCase.AddAttraction)

	// ハンドラーの初期化
	itineraryHandler := handler.NewItineraryHandler(itineraryUseCase)
	exploreHandler := handler.NewExploreHandler(exploreUseCase)
	discoverHandler := handler.NewDiscoverHandler(repoImpl.NewMemoryDiscoverRepository())
	chatHandler := handler.NewChatHandler(ai.NewGeminiChatRepository(geminiClient))
	notificationsHandler := handler.NewNotificationsHandler(notifier)

	r := setupRouter(itineraryHandler, exploreHandler, discoverHandler, chatHandler, notificationsHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Yatra-App server starting on :%s...\n", port)
	log.Fatal(r.Run(":" + port))
}

// setupAttractionsRepository は環境変数に応じてスポットリポジトリを選択する
func setupAttractionsRepository() repository.AttractionsRepository {
	if os.Getenv("SUPABASE_URL") != "" && os.Getenv("SUPABASE_ANON_KEY") != "" {
		supabaseClient, err := database.NewSupabaseClient()
		if err != nil {
			log.Printf("⚠️ Supabaseクライアント初期化失敗: %v", err)
		} else if err := supabaseClient.HealthCheck(); err != nil {
			log.Printf("⚠️ Supabaseヘルスチェック失敗: %v", err)
		} else {
			fmt.Println("✅ Supabase connection successful!")
			return repoImpl.NewSupabaseAttractionsRepository(supabaseClient)
		}
	}

	if os.Getenv("DATABASE_URL") != "" {
		pgClient, err := infraDB.NewPostgreSQLClient()
		if err != nil {
			log.Printf("⚠️ PostgreSQLクライアント初期化失敗: %v", err)
		} else if err := pgClient.HealthCheck(); err != nil {
			log.Printf("⚠️ PostgreSQLヘルスチェック失敗: %v", err)
		} else {
			fmt.Println("✅ PostgreSQL connection successful!")
			return repoImpl.NewPostgresAttractionsRepository(pgClient)
		}
	}

	fmt.Println("⚠️  Database not configured, using in-memory attraction catalogue")
	return repoImpl.NewMemoryAttractionsRepository()
}

// setupRouter はルーティングを設定したgin.Engineを返す
func setupRouter(
	itineraryHandler *handler.ItineraryHandler,
	exploreHandler *handler.ExploreHandler,
	discoverHandler *handler.DiscoverHandler,
	chatHandler *handler.ChatHandler,
	notificationsHandler *handler.NotificationsHandler,
) *gin.Engine {
	r := gin.Default()

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "Yatra-App"})
	})

	// マップエクスプローラー
	r.GET("/attractions", exploreHandler.GetAttractions)
	r.GET("/attractions/:id", exploreHandler.GetAttraction)
	r.GET("/map/pins", exploreHandler.GetMapPins)
	r.POST("/map/select/:id", exploreHandler.PostSelect)
	r.POST("/map/select/:id/itinerary", exploreHandler.PostAddToItinerary)
	r.POST("/map/clear", exploreHandler.PostClear)
	r.POST("/map/hover/:id", exploreHandler.PostHover)
	r.DELETE("/map/hover/:id", exploreHandler.DeleteHover)

	// 旅程ビルダー
	r.GET("/itinerary", itineraryHandler.GetItinerary)
	r.GET("/itinerary/summary", itineraryHandler.GetSummary)
	r.POST("/itinerary/days", itineraryHandler.PostDay)
	r.DELETE("/itinerary/days/:dayId", itineraryHandler.DeleteDay)
	r.PATCH("/itinerary/days/:dayId", itineraryHandler.PatchDay)
	r.POST("/itinerary/days/:dayId/activities", itineraryHandler.PostActivity)
	r.DELETE("/itinerary/days/:dayId/activities/:activityId", itineraryHandler.DeleteActivity)
	r.PATCH("/itinerary/days/:dayId/activities/:activityId", itineraryHandler.PatchActivity)
	r.POST("/itinerary/generate", itineraryHandler.PostGenerate)
	r.POST("/itinerary/share", itineraryHandler.PostShare)
	r.GET("/itinerary/share/:id", itineraryHandler.GetShared)

	// イベント・モデルコース・チャット・通知
	r.GET("/events", discoverHandler.GetEvents)
	r.GET("/travel-routes", discoverHandler.GetTravelRoutes)
	r.POST("/chat", chatHandler.PostChat)
	r.GET("/notifications", notificationsHandler.GetNotifications)

	return r
}
