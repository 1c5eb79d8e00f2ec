package hrest

import "matrimony-service/internal/domain"

type guardRequest struct {
	Session       domain.Session `json:"session"`
	RequiredRoles []domain.Role  `json:"requiredRoles"`
	From          string         `json:"from"`
}

type legacyRequest struct {
	Base    string            `json:"base"`
	SubPath string            `json:"subPath"`
	Params  map[string]string `json:"params"`
}

type legacyResponse struct {
	Path string `json:"path"`
}

type meResponse struct {
	Session  domain.Session       `json:"session"`
	Decision domain.RouteDecision `json:"decision"`
}
