package httpapi

import (
	"net/http"

	"coffeeshop-pos/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func NewRouter(handler *Handler, staff service.StaffServiceInterface) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	r.Use(mux.MiddlewareFunc(StaffResolver(staff)))
	return cors.Default().Handler(r)
}

func StartServer(addr string, handler http.Handler, log *logrus.Logger) {
	log.Infof("POS server starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
