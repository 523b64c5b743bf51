package request

type PartnerUpdateRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type PartnerStateRequest struct {
	State string `json:"state" validate:"required,oneof=on off"`
}

// Enabled reports whether the shop should accept orders.
func (r PartnerStateRequest) Enabled() bool {
	return r.State == "on"
}
