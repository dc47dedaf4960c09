package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.limiter != nil {
		router.Use(h.withRateLimit)
	}

	router.Route("/posts", func(r chi.Router) {
		r.Get("/list", h.listPosts)
		r.Get("/get/{id}", h.getPost)
		r.Post("/new", h.createPost)
		r.Put("/publish/{id}", h.publishPost)
		r.Delete("/delete/{id}", h.deletePost)
		r.Get("/ctx", h.requestCount)
	})

	router.Route("/tests", func(r chi.Router) {
		r.Get("/plain", h.plain)
		r.Get("/path/{object}/{method}/{id}", h.pathParams)
		r.Get("/query", h.queryParam)
		r.Get("/param_query/{param1}", h.pathAndQueryParams)
		r.Post("/post_json", h.postJSON)
		r.Post("/post_form", h.postForm)
		r.Get("/respjson", h.respJSON)
		r.Get("/static/*", h.static("/tests/static/"))
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
