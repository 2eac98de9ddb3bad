package responses

type HealthResponseData struct {
	Status string `json:"status"`
}

type ServiceInfoResponseData struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
