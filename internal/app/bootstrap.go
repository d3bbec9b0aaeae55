package app

import (
	"fmt"
	"strings"

	"skill-finder/internal/delivery/http/middleware"
	"skill-finder/internal/delivery/http/routes"
	"skill-finder/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/static"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	f.Use(cors.New())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware().Middleware())

	registry := routes.NewRegistry(routes.Deps{
		Chat:         c.ChatUC,
		Conversation: c.ConversationUC,
		Profile:      c.ProfileUC,
		Match:        c.MatchUC,
		Skill:        c.SkillUC,
		JWT:          c.JWT,
		WSHandler:    ws.NewHandler(c.Hub, c.Logger),
	})
	registry.Register(f)

	// Static assets go last so API routes always win.
	if dir := strings.TrimSpace(c.Config.App.StaticDir); dir != "" {
		f.Get("/*", static.New(dir))
	}

	return &App{Fiber: f, Container: c}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
