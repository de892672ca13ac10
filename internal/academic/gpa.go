package academic

import "math"

// Grade is one course grade submitted to the GPA calculator.
type Grade struct {
	Letter      string `json:"letter"`
	CreditHours int    `json:"credit_hours"`
}

var gradePoints = map[string]float64{
	"A": 4.0,
	"B": 3.0,
	"C": 2.0,
	"D": 1.0,
	"F": 0.0,
}

const defaultCreditHours = 3

// CalculateGPA computes a credit-hour weighted GPA rounded to two decimals.
// Unknown letters count as 0.0 points; missing credit hours default to 3.
// An empty grade list yields 0.0.
func CalculateGPA(grades []Grade) float64 {
	var totalPoints, totalHours float64
	for _, g := range grades {
		points := gradePoints[g.Letter]
		hours := g.CreditHours
		if hours <= 0 {
			hours = defaultCreditHours
		}
		totalPoints += points * float64(hours)
		totalHours += float64(hours)
	}
	if totalHours == 0 {
		return 0.0
	}
	return math.Round(totalPoints/totalHours*100) / 100
}
