package twilio

import "fmt"

// AvailableNumbersResponse represents the response from the Twilio AvailablePhoneNumbers
// list endpoint. Numbers are returned in provider order.
type AvailableNumbersResponse struct {
	URI                   string                 `json:"uri"`
	AvailablePhoneNumbers []AvailablePhoneNumber `json:"available_phone_numbers"`
}

// AvailablePhoneNumber is a single number that can currently be provisioned.
// PhoneNumber is in E.164 format (e.g. "+15806664659").
type AvailablePhoneNumber struct {
	FriendlyName        string       `json:"friendly_name"`
	PhoneNumber         string       `json:"phone_number"`
	Lata                string       `json:"lata"`
	Locality            string       `json:"locality"`
	RateCenter          string       `json:"rate_center"`
	Region              string       `json:"region"`
	PostalCode          string       `json:"postal_code"`
	ISOCountry          string       `json:"iso_country"`
	AddressRequirements string       `json:"address_requirements"`
	Beta                bool         `json:"beta"`
	Capabilities        Capabilities `json:"capabilities"`
}

// Capabilities lists the channels a number supports.
type Capabilities struct {
	Voice bool `json:"voice"`
	SMS   bool `json:"SMS"`
	MMS   bool `json:"MMS"`
}

// LocalParams filters an available local numbers query.
type LocalParams struct {
	AreaCode     string
	Contains     string
	SMSEnabled   bool
	VoiceEnabled bool
	PageSize     int
}

// APIError is returned for every non-2xx response. Code and MoreInfo are only set
// when Twilio returned its JSON error document.
type APIError struct {
	Status   int    `json:"status"`
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("twilio: API request failed with status %d (code %d): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("twilio: API request failed with status %d: %s", e.Status, e.Message)
}
