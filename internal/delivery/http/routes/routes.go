package routes

import (
	"skill-finder/internal/delivery/http/handler"
	"skill-finder/internal/delivery/http/middleware"
	"skill-finder/internal/pkg/jwt"
	"skill-finder/internal/usecase"
	"skill-finder/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health       *handler.HealthHandler
	chat         *handler.ChatHandler
	conversation *handler.ConversationHandler
	profile      *handler.ProfileHandler
	match        *handler.MatchHandler
	skill        *handler.SkillHandler

	auth *middleware.AuthMiddleware
	wsh  *ws.Handler
}

type Deps struct {
	Chat         usecase.ChatUsecase
	Conversation usecase.ConversationUsecase
	Profile      usecase.ProfileUsecase
	Match        usecase.MatchUsecase
	Skill        usecase.SkillUsecase

	JWT       jwt.Service
	WSHandler *ws.Handler
}

func NewRegistry(d Deps) *Registry {
	r := &Registry{
		health:       handler.NewHealthHandler(),
		chat:         handler.NewChatHandler(d.Chat),
		conversation: handler.NewConversationHandler(d.Conversation),
		profile:      handler.NewProfileHandler(d.Profile),
		match:        handler.NewMatchHandler(d.Match),
		skill:        handler.NewSkillHandler(d.Skill),
		wsh:          d.WSHandler,
	}
	if d.JWT != nil {
		r.auth = middleware.NewAuthMiddleware(d.JWT)
	}
	return r
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.registerAPI(app)
	r.registerWS(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	r.chat.RegisterRoutes(api)
	r.conversation.RegisterRoutes(api)
	r.profile.RegisterRoutes(api)
	r.match.RegisterRoutes(api)

	// Dictionary management stays behind the admin token.
	if r.auth != nil {
		admin := api.Group("/admin", r.auth.Middleware())
		r.skill.RegisterRoutes(admin)
	}
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.wsh == nil {
		return
	}
	app.Get("/ws/chat", r.wsh.HandleChatWS)
}
