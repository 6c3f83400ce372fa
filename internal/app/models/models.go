package models

// SportChoices lists the sports an event or profile may name
var SportChoices = []string{
	"Football",
	"Cricket",
	"Badminton",
	"Basketball",
	"Tennis",
	"Volleyball",
	"Table Tennis",
	"Running",
}

// IsSport reports whether s is one of SportChoices
func IsSport(s string) bool {
	for _, choice := range SportChoices {
		if choice == s {
			return true
		}
	}
	return false
}
