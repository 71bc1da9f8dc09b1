package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Verdantly-Ag/Cropwise/internal/catalog"
	"github.com/Verdantly-Ag/Cropwise/internal/events"
)

type CropsHandler struct {
	store  catalog.Store
	events events.Client
}

func NewCropsHandler(s catalog.Store, ev events.Client) *CropsHandler {
	return &CropsHandler{store: s, events: ev}
}

func (h *CropsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := catalog.CropFilter{
		Season:   r.URL.Query().Get("season"),
		SoilType: r.URL.Query().Get("soil_type"),
	}

	crops, err := h.store.ListCrops(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if crops == nil {
		crops = []*catalog.Crop{}
	}
	writeJSON(w, http.StatusOK, crops)
}

func (h *CropsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid crop id"})
		return
	}

	crop, err := h.store.GetCrop(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if crop == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "crop not found"})
		return
	}
	writeJSON(w, http.StatusOK, crop)
}

func (h *CropsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var crop catalog.Crop
	if err := json.NewDecoder(r.Body).Decode(&crop); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	crop.ID = uuid.Nil

	if err := crop.Validate(); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	if err := h.store.CreateCrop(r.Context(), &crop); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectCropCreated(crop.ID.String()), events.CropChangedEvent{
			CropID: crop.ID.String(),
			Name:   crop.Name,
			Action: "created",
		})
	}
	writeJSON(w, http.StatusCreated, crop)
}

func (h *CropsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid crop id"})
		return
	}

	var crop catalog.Crop
	if err := json.NewDecoder(r.Body).Decode(&crop); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	crop.ID = id

	if err := crop.Validate(); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	if err := h.store.UpdateCrop(r.Context(), &crop); err != nil {
		if errors.Is(err, catalog.ErrCropNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "crop not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectCropUpdated(id.String()), events.CropChangedEvent{
			CropID: id.String(),
			Name:   crop.Name,
			Action: "updated",
		})
	}
	writeJSON(w, http.StatusOK, crop)
}

func (h *CropsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid crop id"})
		return
	}

	if err := h.store.DeleteCrop(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrCropNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "crop not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectCropDeleted(id.String()), events.CropChangedEvent{
			CropID: id.String(),
			Action: "deleted",
		})
	}
	w.WriteHeader(http.StatusNoContent)
}
