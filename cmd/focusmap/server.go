// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/focusmap/internal/auth"
	"github.com/thatcatcamp/focusmap/internal/config"
	"github.com/thatcatcamp/focusmap/internal/db"
	"github.com/thatcatcamp/focusmap/internal/handlers"
	"github.com/thatcatcamp/focusmap/internal/metrics"
	"github.com/thatcatcamp/focusmap/internal/middleware"
	"github.com/thatcatcamp/focusmap/internal/sessions"
	"github.com/thatcatcamp/focusmap/internal/tls"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start the focusmap HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fc, cat, err := loadCatalog()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		store, err := sessions.NewStore(db.GetDB(), newFactory(cat))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		h, err := handlers.New(cat, fc, store, config.GetString("server.title"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		pruner := sessions.NewPruner(store)
		if d := config.GetDuration("session.prune_interval"); d > 0 {
			pruner.Interval = d
		}
		if d := config.GetDuration("session.max_idle"); d > 0 {
			pruner.MaxIdle = d
		}
		prunerDone := pruner.Start()
		log.Println("Session pruner started")

		tlsEnabled := config.GetBool("server.tls_enabled")

		rateLimiter := middleware.NewRateLimiter(config.GetInt("security.rate_limit"), config.GetDuration("security.rate_interval"))
		defer rateLimiter.Close()

		frameAncestors := config.GetStringSlice("security.frame_ancestors")
		if len(frameAncestors) > 0 && !tlsEnabled {
			log.Println("WARNING: security.frame_ancestors is set without TLS; browsers drop the Secure cookies an embedded map needs")
		}
		cookies := middleware.NewCookiePolicy(tlsEnabled, frameAncestors)

		r := gin.Default()
		if err := middleware.TrustProxies(r, config.GetBool("server.behind_proxy"), config.GetStringSlice("server.trusted_proxies")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid server.trusted_proxies: %v\n", err)
			os.Exit(1)
		}
		if tlsEnabled {
			r.Use(middleware.HTTPSRedirectMiddleware(config.GetString("server.https_port")))
		}
		r.Use(middleware.SecurityHeadersMiddleware(tlsEnabled, frameAncestors))
		r.Use(middleware.IPBlocklistMiddleware(config.GetStringSlice("security.blocked_ips")))

		r.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":         "ok",
				"service":        "focusmap",
				"municipalities": cat.Len(),
			})
		})
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
		r.GET("/static/*filepath", handlers.ServeStaticHandler)

		api := r.Group("/api")
		{
			api.GET("/catalog", h.CatalogHandler)
			api.GET("/dataset", h.DatasetHandler)
			api.GET("/departments", h.DepartmentsHandler)
			api.GET("/departments/:name/municipalities", h.MunicipalitiesHandler)
			api.GET("/municipalities/:name", h.MunicipalityHandler)
			api.GET("/search", h.SearchHandler)
		}

		// Routes that read or change the caller's map
		mapGroup := r.Group("/")
		mapGroup.Use(middleware.RateLimitMiddleware(rateLimiter, "/api/"))
		mapGroup.Use(middleware.CSRFMiddleware(cookies, auth.Lifetime()))
		mapGroup.Use(auth.RequireSession(store, cookies))
		{
			mapGroup.GET("/", h.PageHandler)
			mapGroup.GET("/api/view", h.ViewHandler)
			mapGroup.POST("/api/select/department", h.SelectDepartmentHandler)
			mapGroup.POST("/api/select/municipality", h.SelectMunicipalityHandler)
			mapGroup.POST("/api/basemap/:tipo", h.BaseLayerHandler)
			mapGroup.POST("/api/fullscreen", h.FullscreenHandler)
		}

		var servers []*http.Server
		errCh := make(chan error, 2)

		httpAddr := fmt.Sprintf(":%s", config.GetString("server.http_port"))
		baseDomain := config.GetString("server.base_domain")

		if tlsEnabled {
			tlsCfg, err := tls.LoadConfig()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to load TLS config: %v\n", err)
				os.Exit(1)
			}

			tlsManager, err := tls.NewManager(ctx, tlsCfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to initialize TLS manager: %v\n", err)
				os.Exit(1)
			}

			// Bind first so a privileged-port failure is reported right away
			listener, err := net.Listen("tcp", httpAddr)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to bind HTTP server to %s: %v\n", httpAddr, err)
				fmt.Fprintf(os.Stderr, "Hint: Port 80 typically requires root/sudo privileges\n")
				os.Exit(1)
			}
			httpServer := &http.Server{Handler: r}
			servers = append(servers, httpServer)
			go func() {
				fmt.Printf("HTTP server listening on %s (ACME challenges + redirects)\n", httpAddr)
				errCh <- httpServer.Serve(listener)
			}()

			httpsAddr := fmt.Sprintf(":%s", config.GetString("server.https_port"))
			httpsServer := &http.Server{
				Addr:      httpsAddr,
				Handler:   r,
				TLSConfig: tlsManager.GetTLSConfig(),
			}
			servers = append(servers, httpsServer)
			go func() {
				fmt.Printf("Starting HTTPS server on %s\n", httpsAddr)
				fmt.Printf("Base domain: %s\n", baseDomain)
				errCh <- httpsServer.ListenAndServeTLS("", "")
			}()
		} else {
			httpServer := &http.Server{Addr: httpAddr, Handler: r}
			servers = append(servers, httpServer)
			go func() {
				fmt.Printf("Starting HTTP server on %s (TLS disabled)\n", httpAddr)
				fmt.Printf("Base domain: %s\n", baseDomain)
				errCh <- httpServer.ListenAndServe()
			}()
		}

		exitCode := 0
		select {
		case <-ctx.Done():
			log.Println("Shutting down")
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
				exitCode = 1
			}
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("server shutdown: %v", err)
			}
		}

		pruner.Stop()
		select {
		case <-prunerDone:
		case <-shutdownCtx.Done():
			log.Println("session pruner did not stop in time")
		}

		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
