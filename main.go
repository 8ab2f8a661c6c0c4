package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dravedigitals/careerguard/server/config"
	"github.com/dravedigitals/careerguard/server/handlers"
	"github.com/dravedigitals/careerguard/server/middleware"
	"github.com/dravedigitals/careerguard/server/service"
	"github.com/dravedigitals/careerguard/server/store"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	ctx := context.Background()
	db, err := store.NewMongoDB(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("mongodb:", err)
	}
	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			log.Println("mongodb disconnect:", err)
		}
	}()

	if err := db.Seed(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("seed:", err)
	}

	var storage service.Storage
	if cfg.S3Bucket != "" {
		storage, err = service.NewS3Storage(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3AccessKeyID, cfg.S3SecretKey)
		if err != nil {
			log.Fatal("s3:", err)
		}
	} else {
		storage, err = service.NewDiskStorage(cfg.UploadDir)
		if err != nil {
			log.Fatal("uploads dir:", err)
		}
	}
	uploader := &service.Uploader{
		Storage:  storage,
		MaxBytes: cfg.MaxUploadMB * 1024 * 1024,
	}

	mailer := service.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.NotifyEmail)
	if mailer == nil {
		log.Println("SMTP not configured; contact notifications disabled")
	}

	authHandler := &handlers.AuthHandler{DB: db, JWTSecret: cfg.JWTSecret, Uploader: uploader}
	submissions := &handlers.SubmissionsHandler{DB: db, Uploader: uploader, Mailer: mailer}
	content := &handlers.ContentHandler{DB: db}
	testimonials := &handlers.TestimonialsHandler{DB: db}
	dashboard := &handlers.DashboardHandler{DB: db}
	users := &handlers.UsersHandler{DB: db}
	files := &handlers.FilesHandler{Storage: storage}

	r := chi.NewRouter()
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"welcome to careerguard."}`))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/register-detailed", authHandler.RegisterDetailed)
		r.Post("/auth/login", authHandler.Login)

		r.Post("/contact", submissions.SubmitContact)
		r.Post("/job-applications", submissions.SubmitJobApplication)
		r.Post("/fraud-cases", submissions.SubmitFraudCase)
		r.Post("/newsletter", submissions.Subscribe)

		r.Get("/website-content", content.WebsiteContent)
		r.Get("/hero-content", content.ListHero)
		r.Get("/about-content", content.ListAbout)
		r.Get("/services", content.ListServices)
		r.Get("/stats", content.ListStats)
		r.Get("/testimonials", testimonials.List)

		r.Get("/uploads/{filename}", files.Serve)

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTSecret))
			r.Use(middleware.RequireAdmin())

			r.Get("/contacts", submissions.ListContacts)
			r.Put("/contacts/{id}/status", submissions.UpdateContactStatus)
			r.Get("/job-applications", submissions.ListJobApplications)
			r.Put("/job-applications/{id}/status", submissions.UpdateJobApplicationStatus)
			r.Get("/fraud-cases", submissions.ListFraudCases)
			r.Put("/fraud-cases/{id}/status", submissions.UpdateFraudCaseStatus)

			r.Post("/hero-content", content.CreateHero)
			r.Put("/hero-content/{id}", content.UpdateHero)
			r.Delete("/hero-content/{id}", content.DeleteHero)
			r.Post("/about-content", content.CreateAbout)
			r.Put("/about-content/{id}", content.UpdateAbout)
			r.Delete("/about-content/{id}", content.DeleteAbout)
			r.Post("/services", content.CreateService)
			r.Put("/services/{id}", content.UpdateService)
			r.Delete("/services/{id}", content.DeleteService)
			r.Post("/stats", content.CreateStat)
			r.Put("/stats/{id}", content.UpdateStat)
			r.Delete("/stats/{id}", content.DeleteStat)
			r.Put("/website-content/{section}", content.UpdateSection)
			r.Delete("/website-content/{section}/{itemId}", content.DeleteSectionItem)

			r.Get("/testimonials/admin", testimonials.AdminList)
			r.Post("/testimonials", testimonials.Create)
			r.Put("/testimonials/{id}/approve", testimonials.Approve)
			r.Delete("/testimonials/{id}", testimonials.Delete)

			r.Get("/dashboard/stats", dashboard.Stats)
			r.Get("/users", users.List)
			r.Delete("/users/{id}", users.Delete)
		})
	})

	server := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Println("server listening on :" + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("shutdown:", err)
	}
}
