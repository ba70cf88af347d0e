package domain

type Variant struct {
	Name        string `json:"name"`
	Visitors    int    `json:"visitors"`
	Conversions int    `json:"conversions"`
}

// ABTest compara um grupo de controle com um grupo de tratamento
type ABTest struct {
	Name      string  `json:"name"`
	Channel   string  `json:"channel"`
	Control   Variant `json:"control"`
	Treatment Variant `json:"treatment"`
}

type ABTestResult struct {
	Name          string   `json:"name"`
	Channel       string   `json:"channel"`
	ControlRate   *float64 `json:"controlRate"`
	TreatmentRate *float64 `json:"treatmentRate"`
	Uplift        *float64 `json:"uplift"`
	ZScore        float64  `json:"zScore"`
	PValue        float64  `json:"pValue"`
	Significant   bool     `json:"significant"`
}
