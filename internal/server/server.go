package server

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Elton0803/Pokemon-Tool/internal/api"
	"github.com/Elton0803/Pokemon-Tool/internal/calculator"
	"github.com/Elton0803/Pokemon-Tool/internal/config"
	"github.com/Elton0803/Pokemon-Tool/internal/mcptools"
	"github.com/Elton0803/Pokemon-Tool/internal/model"
	"github.com/Elton0803/Pokemon-Tool/internal/parser"
	"github.com/Elton0803/Pokemon-Tool/internal/service/dataset"
	"github.com/Elton0803/Pokemon-Tool/internal/service/matchup"
	"github.com/Elton0803/Pokemon-Tool/internal/store"
)

//go:embed all:dist
var staticFiles embed.FS

// Version 版本号，发布时由 -ldflags 注入
var Version = "dev"

// Server HTTP服务器
type Server struct {
	router   *gin.Engine
	store    *store.Store
	registry *dataset.Registry
}

// NewServer 创建服务器并加载数据集
func NewServer(ctx context.Context, cfg *config.AppConfig) (*Server, error) {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	formula, err := calculator.ParseDefenseFormula(cfg.Scoring.DefenseFormula)
	if err != nil {
		return nil, err
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	sqliteStore, err := store.New(ctx, config.GetDataPath(cfg, cfg.Data.HistoryDB))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	mapper, err := parser.LoadFieldAliases(config.GetDataPath(cfg, cfg.Parser.AliasesFile))
	if err != nil {
		_ = sqliteStore.Close()
		return nil, err
	}

	registry := dataset.NewRegistry(dataset.Options{
		DataDir: dataDir,
		Files: map[model.DatasetKind]string{
			model.DatasetAttack:  cfg.Data.AttackFile,
			model.DatasetDefense: cfg.Data.DefenseFile,
			model.DatasetDPS:     cfg.Data.DPSFile,
		},
		Mapper:   mapper,
		Recorder: sqliteStore,
	})
	if err := registry.LoadAll(ctx); err != nil {
		_ = sqliteStore.Close()
		return nil, err
	}

	svc := matchup.NewService(registry, calculator.NewCalculator(formula))

	var mcpHandler http.Handler
	if cfg.Server.MCPEnabled {
		mcpServer, tools := mcptools.NewServer(svc, Version)
		mcpHandler = mcptools.Handler(mcpServer)
		log.Printf("MCP 已启用: /mcp (%d 个工具)", len(tools))
	}

	s := &Server{
		router:   gin.Default(),
		store:    sqliteStore,
		registry: registry,
	}
	s.setupRoutes(api.NewHandler(svc, sqliteStore), mcpHandler, devMode)

	return s, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(apiHandler *api.Handler, mcpHandler http.Handler, devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, Mcp-Session-Id")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		apiHandler.RegisterRoutes(apiGroup)
	}

	if mcpHandler != nil {
		s.router.Any("/mcp", gin.WrapH(mcpHandler))
	}

	// 静态资源
	var sub fs.FS
	if devMode {
		// 开发模式：直接读源码目录，修改页面无需重新编译
		sub = os.DirFS("internal/server/dist")
	} else {
		sub, _ = fs.Sub(staticFiles, "dist")
	}

	index := func(c *gin.Context) {
		data, err := fs.ReadFile(sub, "index.html")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	}
	s.router.GET("/", index)
	s.router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		index(c)
	})
}

// Handler 底层 http.Handler（用于测试）
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close 关闭数据库连接
func (s *Server) Close() error {
	return s.store.Close()
}

// Registry 数据集注册表
func (s *Server) Registry() *dataset.Registry {
	return s.registry
}
