package v1

import (
	"errors"

	"github.com/shenikar/usher_checkin/internal/geo"
	"github.com/shenikar/usher_checkin/internal/models"
)

var errPositionMissing = errors.New("latitude and longitude are required unless position_error is set")

// PositionSource преобразует отчет клиента в источник координат
func (r PositionReport) PositionSource() (geo.PositionSource, error) {
	if r.PositionError != "" {
		return geo.Reported{ErrKind: models.PositionErrorKind(r.PositionError)}, nil
	}
	if r.Latitude == nil || r.Longitude == nil {
		return nil, errPositionMissing
	}
	return geo.Reported{Position: &models.Position{Latitude: *r.Latitude, Longitude: *r.Longitude}}, nil
}

func ModelsToVenueResponses(venues []models.VenueLocation) []VenueResponse {
	responses := make([]VenueResponse, len(venues))
	for i, v := range venues {
		responses[i] = VenueResponse{Name: v.Name, Latitude: v.Latitude, Longitude: v.Longitude}
	}
	return responses
}

func ModelToNearestVenueResponse(model models.NearestVenueResult) *NearestVenueResponse {
	return &NearestVenueResponse{
		VenueName:      model.VenueName,
		DistanceMeters: model.DistanceMeters,
		IsWithin:       model.IsWithin,
	}
}

// ModelToCheckInResponse преобразует доменную модель в DTO для ответа
func ModelToCheckInResponse(model *models.CheckIn) *CheckInResponse {
	return &CheckInResponse{
		ID:             model.ID,
		UserID:         model.UserID,
		Latitude:       model.Latitude,
		Longitude:      model.Longitude,
		VenueName:      model.VenueName,
		DistanceMeters: model.DistanceMeters,
		IsWithin:       model.IsWithin,
		CheckedAt:      model.CheckedAt,
	}
}

// ModelsToCheckInResponses преобразует слайс моделей в слайс DTO
func ModelsToCheckInResponses(models []*models.CheckIn) []*CheckInResponse {
	responses := make([]*CheckInResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToCheckInResponse(model)
	}
	return responses
}

func modelToAdvisoryResponse(view models.AdvisoryView) AdvisoryResponse {
	resp := AdvisoryResponse{
		Kind:    string(view.Kind),
		Phase:   string(view.Phase),
		Visible: view.Visible,
		Count:   view.Count,
	}
	if view.Nearest != nil {
		resp.Nearest = ModelToNearestVenueResponse(*view.Nearest)
	}
	return resp
}

func ModelToAdvisorySessionResponse(snap *models.AdvisorySnapshot) *AdvisorySessionResponse {
	return &AdvisorySessionResponse{
		SessionID: snap.SessionID,
		Location:  modelToAdvisoryResponse(snap.Location),
		Device:    modelToAdvisoryResponse(snap.Device),
	}
}
