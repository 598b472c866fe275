package handlers

import (
	"myresolver/domain"
	"myresolver/service"
)

// fromRegisterRequest converts RegisterRequest to domain.Announcement.
// Returns service.BadParameterError on validation failure.
func fromRegisterRequest(req RegisterRequest) (domain.Announcement, error) {
	if req.Identity == "" {
		return domain.Announcement{}, service.NewBadParameterError("identity is required", nil)
	}
	if req.LeaseS <= 0 {
		return domain.Announcement{}, service.NewBadParameterError("lease_s is required", nil)
	}

	return domain.Announcement{
		Identity:     req.Identity,
		LeaseSeconds: req.LeaseS,
	}, nil
}
