package request_models

type GenerateWindow struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end"`
}

type GenerateItineraryRequest struct {
	Date        string         `json:"date" binding:"required"`
	Time        GenerateWindow `json:"time" binding:"required"`
	BudgetLevel int            `json:"budgetLevel" binding:"required,min=1,max=4"`
	Activities  []string       `json:"activities"`
	Cuisines    []string       `json:"cuisines"`
}
