package services

import (
	"errors"
	"time"

	"canteen/entity"
	"canteen/pkg/apperr"
	"canteen/repository"

	"gorm.io/gorm"
)

var weekDays = map[string]bool{
	"MONDAY": true, "TUESDAY": true, "WEDNESDAY": true, "THURSDAY": true,
	"FRIDAY": true, "SATURDAY": true, "SUNDAY": true,
}

type WeeklyMenuService struct {
	Repo     *repository.WeeklyMenuRepository
	MenuRepo *repository.MenuItemRepository

	now func() time.Time
}

func NewWeeklyMenuService(repo *repository.WeeklyMenuRepository, menuRepo *repository.MenuItemRepository) *WeeklyMenuService {
	return &WeeklyMenuService{Repo: repo, MenuRepo: menuRepo, now: time.Now}
}

type WeeklyMenuRequest struct {
	MenuID        string    `json:"menuId" binding:"required"`
	DayOfWeek     string    `json:"dayOfWeek" binding:"required"`
	MealCategory  string    `json:"mealCategory"`
	WeekStartDate time.Time `json:"weekStartDate" binding:"required"`
	WeekEndDate   time.Time `json:"weekEndDate" binding:"required"`
}

// Create schedules one menu item row onto a weekday of the given week.
// The item is resolved by its business id so the schedule pins a concrete
// price epoch.
func (s *WeeklyMenuService) Create(req *WeeklyMenuRequest, createdBy string) (*entity.WeeklyMenu, error) {
	if !weekDays[req.DayOfWeek] {
		return nil, apperr.InvalidRequest("unknown day of week: " + req.DayOfWeek)
	}
	if req.WeekEndDate.Before(req.WeekStartDate) {
		return nil, apperr.InvalidRequest("week end date before week start date")
	}

	item, err := s.MenuRepo.FindByMenuID(req.MenuID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("menu item not found with menuId: %s", req.MenuID)
		}
		return nil, err
	}

	wm := &entity.WeeklyMenu{
		MenuItemID:    item.ID,
		DayOfWeek:     req.DayOfWeek,
		MealCategory:  req.MealCategory,
		WeekStartDate: req.WeekStartDate,
		WeekEndDate:   req.WeekEndDate,
		CreatedBy:     createdBy,
	}
	if err := s.Repo.Create(wm); err != nil {
		return nil, err
	}
	wm.MenuItem = *item
	wm.MenuItem.RefreshActive(s.now())
	return wm, nil
}

func (s *WeeklyMenuService) ForDay(date time.Time, dayOfWeek, category string) ([]entity.WeeklyMenu, error) {
	if dayOfWeek != "" && !weekDays[dayOfWeek] {
		return nil, apperr.InvalidRequest("unknown day of week: " + dayOfWeek)
	}
	items, err := s.Repo.FindForDay(date, dayOfWeek, category)
	if err != nil {
		return nil, err
	}
	s.refreshAll(items)
	return items, nil
}

func (s *WeeklyMenuService) Between(start, end time.Time) ([]entity.WeeklyMenu, error) {
	items, err := s.Repo.FindBetween(start, end)
	if err != nil {
		return nil, err
	}
	s.refreshAll(items)
	return items, nil
}

func (s *WeeklyMenuService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

// CopyPreviousWeek duplicates the schedule of the week before targetStart
// into the target week. Weeks that have not happened yet cannot be copied
// from.
func (s *WeeklyMenuService) CopyPreviousWeek(targetStart time.Time, createdBy string) ([]entity.WeeklyMenu, error) {
	if targetStart.After(s.now().AddDate(0, 0, 7)) {
		return nil, apperr.InvalidRequest("cannot copy from a week that has not happened yet")
	}

	prevStart := targetStart.AddDate(0, 0, -7)
	prevEnd := targetStart.AddDate(0, 0, -1)
	source, err := s.Repo.FindBetween(prevStart, prevEnd)
	if err != nil {
		return nil, err
	}
	if len(source) == 0 {
		return []entity.WeeklyMenu{}, nil
	}

	targetEnd := targetStart.AddDate(0, 0, 6)
	copies := make([]entity.WeeklyMenu, 0, len(source))
	for _, wm := range source {
		copies = append(copies, entity.WeeklyMenu{
			MenuItemID:    wm.MenuItemID,
			DayOfWeek:     wm.DayOfWeek,
			MealCategory:  wm.MealCategory,
			WeekStartDate: targetStart,
			WeekEndDate:   targetEnd,
			CreatedBy:     createdBy,
		})
	}
	if err := s.Repo.CreateAll(copies); err != nil {
		return nil, err
	}
	return copies, nil
}

func (s *WeeklyMenuService) refreshAll(items []entity.WeeklyMenu) {
	now := s.now()
	for i := range items {
		items[i].MenuItem.RefreshActive(now)
	}
}
