package utils

import (
	"math/rand"

	"github.com/kedaikopi-dev/barista-roster/backend/internal/domain"
)

var commonNames = []string{
	"Budi", "Siti", "Andi", "Dewi", "Aji", "Maya",
	"Rina", "Eko", "Putri", "Agus", "Lina", "Rudi",
	"Sari", "Joko", "Indah", "Bayu", "Wulan", "Hendra",
	"Fitri", "Doni", "Ayu", "Tono", "Mega", "Iwan",
}

func GenerateRandomBaristaName() string {
	return commonNames[rand.Intn(len(commonNames))]
}

var roles = []string{
	domain.RoleCasual,
	domain.RoleBarista,
	domain.RoleSeniorBarista,
	domain.RoleHeadBarista,
}

func GenerateRandomRole() string {
	return roles[rand.Intn(len(roles))]
}

func GenerateRandomBarista(avatarBaseURL string) *domain.Barista {
	name := GenerateRandomBaristaName()

	return &domain.Barista{
		Name:   name,
		Role:   GenerateRandomRole(),
		Avatar: AvatarURL(avatarBaseURL, name, ""),
	}
}

// GenerateRandomCrew picks a random subset of the barista ids with a
// Fisher-Yates shuffle; the subset may be empty, an unstaffed shift is valid.
func GenerateRandomCrew(baristaIDs []int64, max int) []int64 {
	shuffled := append([]int64{}, baristaIDs...)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	n := rand.Intn(max + 1)
	if n > len(shuffled) {
		n = len(shuffled)
	}

	return shuffled[:n]
}
