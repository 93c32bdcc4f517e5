package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/robfig/cron/v3"

	httpadp "loan-collection-service/internal/adapter/http"
	mw "loan-collection-service/internal/adapter/middleware"
	"loan-collection-service/internal/adapter/repository/mysql"
	"loan-collection-service/internal/audit"
	"loan-collection-service/internal/config"
	loanDomain "loan-collection-service/internal/domain/loan"
	scheduleDomain "loan-collection-service/internal/domain/schedule"
	"loan-collection-service/internal/infrastructure/cache"
	"loan-collection-service/internal/infrastructure/db"
	loanUC "loan-collection-service/internal/usecase/loan"
	paymentUC "loan-collection-service/internal/usecase/payment"
	settlementUC "loan-collection-service/internal/usecase/settlement"
	sweepUC "loan-collection-service/internal/usecase/sweep"
	"loan-collection-service/pkg/clock"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(&loanDomain.Loan{}, &scheduleDomain.Period{}, &scheduleDomain.PaymentRecord{}); err != nil {
		log.Fatal(err)
	}
	if err := audit.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	clk := clock.System()
	uow := mysql.NewGormUoW(gdb)
	recorder := audit.NewGormRecorder(gdb)
	assets := audit.NewGormAssetLedger(gdb)

	loans := loanUC.NewUsecase(uow, recorder, clk)
	payments := paymentUC.NewUsecase(uow, recorder, assets, clk)
	settlements := settlementUC.NewUsecase(uow, recorder, assets, clk)
	sweeper := sweepUC.NewUsecase(mysql.NewScheduleRepository(gdb), mysql.NewLoanRepository(gdb), clk)

	h := httpadp.NewHandler()
	lh := httpadp.NewLoanHandler(loans)
	ph := httpadp.NewPaymentHandler(payments)
	sh := httpadp.NewSettlementHandler(settlements)
	wh := httpadp.NewSweepHandler(sweeper)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	idemp := mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)
	e.GET("/loans/:loan_id", lh.GetLoan)
	e.GET("/loans/:loan_id/schedules", lh.ListSchedules)
	e.POST("/loans", lh.CreateLoan, idemp)
	e.DELETE("/loans/:loan_id", lh.DeleteLoan, idemp)
	e.POST("/schedules/:schedule_id/payment", ph.ApplyPayment, idemp)
	e.POST("/loans/:loan_id/settlement", sh.SettleLoan, idemp)
	e.POST("/sweep", wh.RunSweep)

	// daily status sweep
	cr := cron.New()
	if _, err := cr.AddFunc(cfg.SweepSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		if _, err := sweeper.Run(ctx); err != nil {
			log.Printf("sweep: scheduled run failed: %v", err)
		}
	}); err != nil {
		log.Fatal(err)
	}
	cr.Start()
	defer cr.Stop()

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
