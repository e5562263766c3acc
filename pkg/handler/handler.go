package handler

import (
	"context"
	"net/http"
	"time"

	"apod"
	"apod/pkg/client"
	"apod/pkg/consts"
	srvc "apod/pkg/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// upstream calls share the request's context, capped at this timeout
const requestTimeout = 10 * time.Second

type Handler struct {
	services *srvc.Service
	logger   logrus.FieldLogger
}

func NewHandler(services *srvc.Service, logger logrus.FieldLogger) *Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{services: services, logger: logger}
}

func (h *Handler) InitRoutes() *mux.Router {

	router := mux.NewRouter()

	// metadata as json, and a redirect to the media itself
	router.HandleFunc("/v1/picday", h.PictureOfTheDay).Methods(http.MethodGet)
	router.HandleFunc("/v1/picday/image", h.PictureImage).Methods(http.MethodGet)

	return router
}

// PictureOfTheDay answers with the metadata of the requested picture.
func (h *Handler) PictureOfTheDay(w http.ResponseWriter, r *http.Request) {

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	md, ok := h.fetch(ctx, w, r)
	if !ok {
		return
	}

	sendJSON(w, http.StatusOK, md)
}

// PictureImage redirects to the best available link of the requested picture.
func (h *Handler) PictureImage(w http.ResponseWriter, r *http.Request) {

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	md, ok := h.fetch(ctx, w, r)
	if !ok {
		return
	}

	u, err := md.PreferredURL()
	if err != nil {
		h.logger.WithField("title", md.Title).Warn("picture has no link")
		sendResponse(w, http.StatusNotFound, "picture has no link")
		return
	}

	http.Redirect(w, r, u, http.StatusFound)
}

// fetch reads the query, calls the service and forwards the rate limit
// headers. It writes the error response itself and reports false on failure.
func (h *Handler) fetch(ctx context.Context, w http.ResponseWriter, r *http.Request) (*apod.Metadata, bool) {

	date, hasDate, err := getTimeParam(r, consts.ParamDate)
	if err != nil {
		sendResponse(w, http.StatusBadRequest, "date is not in the correct format, use yyyy-mm-dd")
		return nil, false
	}

	hd, err := getBoolParam(r, consts.ParamHd, true)
	if err != nil {
		sendResponse(w, http.StatusBadRequest, "hd must be true or false")
		return nil, false
	}

	var (
		md     *apod.Metadata
		limits client.RateLimitInfo
	)
	if hasDate {
		md, limits, err = h.services.GetByDate(ctx, date, hd)
	} else {
		md, limits, err = h.services.Today(ctx, hd)
	}
	if err != nil {
		status, msg := replyFromError(err)
		h.logger.WithError(err).WithFields(logrus.Fields{
			"date":   getStringParam(r, consts.ParamDate),
			"hd":     hd,
			"status": status,
		}).Error("cannot fetch picture")

		sendResponse(w, status, msg)
		return nil, false
	}

	setRateLimitHeaders(w, limits)
	return md, true
}
