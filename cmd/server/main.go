package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/config"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/handler"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/infra"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/repository"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/router"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/service"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/worker"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/ws"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo cargar la configuración")
	}

	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL, cfg.Env)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a la base de datos")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a redis")
	}

	// Repositorios
	articuloRepo := repository.NewArticuloRepository(db)
	comboRepo := repository.NewComboRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	puntoRepo := repository.NewPuntoEntregaRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	entradaRepo := repository.NewEntradaRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	movRepo := repository.NewMovimientoStockRepository(db)
	bitacoraRepo := repository.NewBitacoraRepository(db)
	configRepo := repository.NewConfiguracionRepository(db)

	// Infraestructura
	dispatcher := worker.NewDispatcher(rdb)
	mailer := infra.NewMailer(cfg)
	tickets := infra.NewTicketGenerator()
	hub := ws.NewHub()

	// Servicios
	bitacoraSvc := service.NewBitacoraService(bitacoraRepo, dispatcher)
	inventarioSvc := service.NewInventarioService(articuloRepo, comboRepo, movRepo)
	articuloSvc := service.NewArticuloService(articuloRepo, proveedorRepo, bitacoraSvc, rdb)
	comboSvc := service.NewComboService(comboRepo, articuloRepo, bitacoraSvc)
	proveedorSvc := service.NewProveedorService(proveedorRepo, articuloRepo, bitacoraSvc)
	puntoSvc := service.NewPuntoEntregaService(puntoRepo, bitacoraSvc)
	authSvc := service.NewAuthService(usuarioRepo, bitacoraSvc, cfg.JWTSecret)
	entradaSvc := service.NewEntradaService(entradaRepo, proveedorRepo, inventarioSvc, bitacoraSvc)
	ventaSvc := service.NewVentaService(ventaRepo, puntoRepo, inventarioSvc, bitacoraSvc, dispatcher, hub)
	configSvc := service.NewConfiguracionService(configRepo, bitacoraSvc)
	dashboardSvc := service.NewDashboardService(ventaRepo, articuloRepo, ventaSvc)

	// Workers en segundo plano
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	pool := worker.NewPool(rdb, bitacoraRepo, mailer, cfg.WorkerPoolSize)
	pool.Start(workerCtx)

	r := router.New(cfg, router.Handlers{
		Health:        handler.NewHealthHandler(db, rdb, mailer, hub),
		Auth:          handler.NewAuthHandler(authSvc),
		Usuarios:      handler.NewUsuarioHandler(authSvc),
		Articulos:     handler.NewArticuloHandler(articuloSvc, inventarioSvc),
		Combos:        handler.NewComboHandler(comboSvc),
		Proveedores:   handler.NewProveedorHandler(proveedorSvc),
		Puntos:        handler.NewPuntoEntregaHandler(puntoSvc),
		Entradas:      handler.NewEntradaHandler(entradaSvc),
		Ventas:        handler.NewVentaHandler(ventaSvc, configSvc, tickets),
		Dashboard:     handler.NewDashboardHandler(dashboardSvc),
		Configuracion: handler.NewConfiguracionHandler(configSvc),
		Bitacora:      handler.NewBitacoraHandler(bitacoraSvc),
	}, hub)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("servidor iniciado")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("el servidor terminó con error")
		}
	}()

	// Apagado ordenado
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("apagando servidor...")

	stopWorkers()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("apagado forzado")
	}
	log.Info().Msg("servidor detenido")
}
