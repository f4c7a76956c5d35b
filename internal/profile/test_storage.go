package profile

import (
	"context"
	"sync"

	"github.com/brianvoe/gofakeit/v6"
)

// testStorage is an in-memory Storage with switchable failures, used by tests
// across packages.
type testStorage struct {
	mu      sync.Mutex
	values  map[string][]byte
	failErr error

	SetCalls    int
	DeleteCalls int
}

func NewTestStorage() *testStorage {
	return &testStorage{
		values: make(map[string][]byte),
	}
}

// FailWith makes every following operation return err (nil restores).
func (ts *testStorage) FailWith(err error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.failErr = err
}

func (ts *testStorage) Raw(key string) ([]byte, bool) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	v, ok := ts.values[key]
	return v, ok
}

func (ts *testStorage) Put(key string, value []byte) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.values[key] = value
}

func (ts *testStorage) Get(_ context.Context, key string) ([]byte, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if ts.failErr != nil {
		return nil, ts.failErr
	}
	v, ok := ts.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte{}, v...), nil
}

func (ts *testStorage) Set(_ context.Context, key string, value []byte) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.SetCalls++
	if ts.failErr != nil {
		return ts.failErr
	}
	ts.values[key] = append([]byte{}, value...)
	return nil
}

func (ts *testStorage) Delete(_ context.Context, key string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.DeleteCalls++
	if ts.failErr != nil {
		return ts.failErr
	}
	delete(ts.values, key)
	return nil
}

// FakeProfile builds a valid, fully populated profile from seed.
func FakeProfile(seed int64) CoachProfile {
	f := gofakeit.New(seed)

	windows := []string{WindowEarlyMorning, WindowPreWork, WindowMidday, WindowLateAfternoon, WindowEvening, WindowWeekend}
	f.ShuffleStrings(windows)
	equipment := []string{EquipmentBodyweight, EquipmentDumbbells, EquipmentKettlebell, EquipmentBands, EquipmentFullGym, EquipmentOutdoors}
	f.ShuffleStrings(equipment)

	p := CoachProfile{
		FullName:            f.Name(),
		Occupation:          f.JobTitle(),
		WorkStyle:           WorkStyle(f.RandomString([]string{"remote", "hybrid", "onsite"})),
		Timezone:            f.TimeZoneAbv(),
		Goal:                Goal(f.RandomString([]string{"fat_loss", "maintain", "muscle_gain"})),
		HeightCm:            Ptr(float64(f.IntRange(150, 200))),
		WeightKg:            Ptr(float64(f.IntRange(50, 120))),
		Age:                 Ptr(f.IntRange(18, 70)),
		Gender:              Gender(f.RandomString([]string{"female", "male", "non_binary", "prefer_not_to_say"})),
		ActivityLevel:       ActivityLevel(f.RandomString([]string{"sedentary", "light", "moderate", "high"})),
		PreferredWindows:    windows[:f.IntRange(0, len(windows))],
		EquipmentAccess:     equipment[:f.IntRange(0, len(equipment))],
		DietPreference:      DietPreference(f.RandomString([]string{"standard", "vegetarian", "vegan", "pescatarian", "gluten_free"})),
		StressLevel:         StressLevel(f.RandomString([]string{"low", "moderate", "high"})),
		Injuries:            f.Sentence(4),
		DietaryRestrictions: f.RandomString([]string{"", "dairy", "shellfish, pork"}),
		DietaryPreferences:  f.Sentence(3),
		Notes:               f.Sentence(6),
	}
	if f.Bool() {
		p.CalorieTarget = Ptr(f.IntRange(1500, 3500))
	}
	if f.Bool() {
		p.CommuteMinutes = Ptr(f.IntRange(0, 90))
	}
	p.Normalize()
	return p
}
