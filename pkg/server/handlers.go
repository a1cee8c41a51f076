package server

import (
	"encoding/json"
	"net/http"

	"github.com/sqlkit/sqlformat/pkg/config"
	"github.com/sqlkit/sqlformat/pkg/formatter"
	"github.com/sqlkit/sqlformat/pkg/tokenizer"
	"github.com/sqlkit/sqlformat/pkg/validator"
)

type formatRequest struct {
	SQL     string          `json:"sql"`
	Preset  string          `json:"preset"`
	Options json.RawMessage `json:"options"`
}

type sqlRequest struct {
	SQL     string `json:"sql"`
	Dialect string `json:"dialect"`
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	var req formatRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if req.SQL == "" {
		writeError(w, http.StatusBadRequest, "No SQL text provided")
		return
	}
	if len(req.SQL) > config.MaxSQLLength {
		writeError(w, http.StatusRequestEntityTooLarge, "SQL text exceeds maximum length")
		return
	}

	// Resolve options: preset first, then per-request overrides on top.
	opts := s.cfg.Format
	if req.Preset != "" {
		opts, _ = s.cfg.Preset(req.Preset)
	}
	if len(req.Options) > 0 {
		if err := json.Unmarshal(req.Options, &opts); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid formatting options")
			return
		}
	}

	writeJSON(w, http.StatusOK, s.formatter.Format(req.SQL, opts))
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req sqlRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if req.SQL == "" {
		writeError(w, http.StatusBadRequest, "No SQL text provided")
		return
	}
	if len(req.SQL) > config.MaxSQLLength {
		writeError(w, http.StatusRequestEntityTooLarge, "SQL text exceeds maximum length")
		return
	}

	report := s.validatorFor(req.Dialect).Validate(req.SQL)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"validation": report,
	})
}

func (s *Server) handleMinify(w http.ResponseWriter, r *http.Request) {
	var req sqlRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if req.SQL == "" {
		writeError(w, http.StatusBadRequest, "No SQL text provided")
		return
	}
	if len(req.SQL) > config.MaxSQLLength {
		writeError(w, http.StatusRequestEntityTooLarge, "SQL text exceeds maximum length")
		return
	}

	result := s.formatter.Minify(req.SQL)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":           true,
		"minified_sql":      result.MinifiedSQL,
		"original_length":   result.OriginalLength,
		"minified_length":   result.MinifiedLength,
		"compression_ratio": result.CompressionRatio,
	})
}

func (s *Server) handleOptions(w http.ResponseWriter, _ *http.Request) {
	presets := make([]string, 0, len(s.cfg.Presets))
	for name := range s.cfg.Presets {
		presets = append(presets, name)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"options":          formatter.DefaultOptions(),
		"keyword_cases":    []string{"upper", "lower", "capitalize"},
		"identifier_cases": []string{"", "upper", "lower", "capitalize"},
		"indent_widths":    []int{2, 4, 8},
		"presets":          presets,
		"sql_keywords":     tokenizer.Keywords(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "SQL Formatter API",
		"version": Version,
	})
}

// validatorFor picks the dialect tokenizer; only mysql has a dedicated one.
func (s *Server) validatorFor(dialect string) *validator.Validator {
	if dialect == "mysql" {
		return s.mysqlValidator
	}
	return s.validator
}

func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "No JSON data provided")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}
