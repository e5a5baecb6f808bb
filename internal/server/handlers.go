package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/samdwyer/pixelsaga/internal/seed"
	"github.com/samdwyer/pixelsaga/internal/world"
)

// generateRequest is the shared request body for all generation endpoints.
// Seed is kept raw because callers send it as either a number or a string;
// both are handed to seed.Normalize as text.
type generateRequest struct {
	Theme       string          `json:"theme"`
	Size        string          `json:"size"`
	Seed        json.RawMessage `json:"seed"`
	Type        string          `json:"type"`
	AssetType   string          `json:"asset_type"`
	Material    string          `json:"material"`
	Enhancement string          `json:"enhancement"`
	Rarity      string          `json:"rarity"`
	Power       int             `json:"power"`
	ValueMod    float64         `json:"value_mod"`
}

// seedText converts the raw seed field to the text form seed.Normalize expects.
func (req *generateRequest) seedText() string {
	raw := strings.TrimSpace(string(req.Seed))
	if raw == "" || raw == "null" {
		return ""
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(req.Seed, &s); err != nil {
			return ""
		}
		return s
	}
	return raw
}

// assetType resolves the two accepted spellings of the asset type field.
func (req *generateRequest) assetType() string {
	if req.Type != "" {
		return req.Type
	}
	return req.AssetType
}

type statusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

type mapResponse struct {
	Status string `json:"status"`
	world.MapResult
}

type questResponse struct {
	Status string `json:"status"`
	world.QuestResult
}

type assetResponse struct {
	Status      string `json:"status"`
	ForgeStatus string `json:"forge_status"`
	world.AssetResult
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok", Service: "pixelsaga", Version: "dev"})
}

func (s *Server) handleGenerateMap(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}

	seedVal := seed.Normalize(req.seedText())
	result := world.GenerateMap(r.Context(), s.catalog, req.Theme, req.Size, seedVal)

	writeJSON(w, http.StatusOK, mapResponse{Status: "success", MapResult: result})
}

func (s *Server) handleGenerateQuest(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}

	seedVal := seed.Normalize(req.seedText())
	result := world.GenerateQuest(r.Context(), s.catalog, req.Theme, req.Size, seedVal)

	writeJSON(w, http.StatusOK, questResponse{Status: "success", QuestResult: result})
}

func (s *Server) handleGenerateAsset(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}

	seedVal := seed.Normalize(req.seedText())
	result := world.GenerateAsset(r.Context(), s.catalog, req.Theme, req.Size, seedVal, world.AssetOptions{
		Type:        req.assetType(),
		Material:    req.Material,
		Enhancement: req.Enhancement,
		Rarity:      req.Rarity,
		Power:       req.Power,
		ValueMod:    req.ValueMod,
	})

	forgeStatus := fmt.Sprintf("Seed %d · %s %s · Power %d",
		result.Seed, strings.ToUpper(result.Rarity), result.Type, result.Power)

	writeJSON(w, http.StatusOK, assetResponse{
		Status:      "success",
		ForgeStatus: forgeStatus,
		AssetResult: result,
	})
}

// decode parses a generation request body. A malformed body is the only hard
// failure in the API; every field-level problem is resolved by fallback or
// clamping further down.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (generateRequest, bool) {
	var req generateRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.logger.Warnf("bad request body: %v", err)
			writeJSON(w, http.StatusBadRequest, errorResponse{Status: "error", Error: "invalid JSON body"})
			return generateRequest{}, false
		}
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
