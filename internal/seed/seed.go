package seed

import (
	"log/slog"
	"time"

	"github.com/kedaikopi-dev/barista-roster/backend/internal/domain"
	"github.com/kedaikopi-dev/barista-roster/backend/internal/repository"
	"github.com/kedaikopi-dev/barista-roster/backend/internal/schedule"
	"github.com/kedaikopi-dev/barista-roster/backend/internal/utils"
)

// defaultRoster mirrors the roster the café opened with. Backgrounds are the
// fixed house palette so the avatars match the existing printed rota.
var defaultRoster = []struct {
	Name       string
	Role       string
	Background string
}{
	{"Budi", domain.RoleHeadBarista, "d4a373"},
	{"Siti", domain.RoleSeniorBarista, "faedcd"},
	{"Andi", domain.RoleBarista, "6b705c"},
	{"Dewi", domain.RoleBarista, "dda15e"},
	{"Aji", domain.RoleHeadBarista, "d4a373"},
	{"Maya", domain.RoleCasual, "8b5cf6"},
}

// SeedDefaultRoster inserts the default baristas only when the roster is
// empty. Returns whether anything was inserted; calling it repeatedly is safe.
func SeedDefaultRoster(repo *repository.Repository, avatarBaseURL string) (bool, error) {
	count, err := repo.CountBaristas()
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	for _, entry := range defaultRoster {
		barista := &domain.Barista{
			Name:   entry.Name,
			Role:   entry.Role,
			Avatar: utils.AvatarURL(avatarBaseURL, entry.Name, entry.Background),
		}
		if err := repo.CreateBarista(barista); err != nil {
			return false, err
		}
	}

	return true, nil
}

// SeedRandomMonth fills every day of the month with a random crew per shift
// for the current roster. Meant for development databases.
func SeedRandomMonth(repo *repository.Repository, year int, month time.Month) error {
	baristas, err := repo.ListBaristas()
	if err != nil {
		return err
	}

	ids := make([]int64, 0, len(baristas))
	for _, barista := range baristas {
		ids = append(ids, barista.ID)
	}

	first, last := schedule.MonthBounds(year, month)
	days := 0

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		for _, kind := range domain.ShiftKinds {
			crew := utils.GenerateRandomCrew(ids, 3)
			if err := repo.ReplaceAssignmentSet(day, kind, crew); err != nil {
				return err
			}
		}
		days++
	}

	slog.Info("seeded random month schedule", "year", year, "month", int(month), "days", days)
	return nil
}
