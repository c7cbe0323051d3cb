package planner

// BlockKind identifies one of the seven fixed daily time blocks.
type BlockKind string

const (
	KindBreakfast BlockKind = "breakfast"
	KindLunch     BlockKind = "lunch"
	KindDinner    BlockKind = "dinner"
	KindMorning   BlockKind = "morning"
	KindAfternoon BlockKind = "afternoon"
	KindEvening   BlockKind = "evening"
	KindHotel     BlockKind = "hotel"
)

// BlockClass groups block kinds by scheduling behavior.
type BlockClass int

const (
	ClassMeal BlockClass = iota
	ClassActivity
	ClassRest
)

var blockClasses = map[BlockKind]BlockClass{
	KindBreakfast: ClassMeal,
	KindLunch:     ClassMeal,
	KindDinner:    ClassMeal,
	KindMorning:   ClassActivity,
	KindAfternoon: ClassActivity,
	KindEvening:   ClassActivity,
	KindHotel:     ClassRest,
}

// Class returns the scheduling class of the block kind.
func (k BlockKind) Class() BlockClass { return blockClasses[k] }

// Category is a coarse place grouping used to match places to blocks.
type Category string

const (
	CategoryRestaurant Category = "restaurant"
	CategoryCafe       Category = "cafe"
	CategoryHotel      Category = "hotel"
	CategoryActivity   Category = "activity"
)

var categoryTypes = map[Category][]string{
	CategoryRestaurant: {
		"restaurant", "meal_delivery", "meal_takeaway",
		"vietnamese_restaurant", "asian_restaurant", "thai_restaurant",
		"chinese_restaurant", "indian_restaurant", "japanese_restaurant",
		"korean_restaurant", "italian_restaurant", "french_restaurant",
	},
	CategoryCafe: {
		"cafe", "bakery", "coffee_shop", "breakfast_restaurant", "food",
	},
	CategoryHotel: {
		"lodging", "hotel", "hostel", "guest_house", "inn",
	},
	CategoryActivity: {
		"tourist_attraction", "museum",
		"park", "zoo", "aquarium", "art_gallery", "amusement_park",
		"shopping_mall", "night_club", "bar", "pub", "spa", "gym",
		"movie_theater", "library", "church", "place_of_worship",
		"historical_landmark", "cultural_center", "monument",
		"garden", "beach", "viewpoint", "temple", "shrine",
	},
}

// TypesForCategories flattens the category mapping into a deduplicated
// type list.
func TypesForCategories(categories []Category) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range categories {
		for _, t := range categoryTypes[c] {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// TimeBlock is one fixed window in the daily schedule. End may wrap past
// midnight for the hotel block.
type TimeBlock struct {
	Kind          BlockKind
	Start         Clock
	End           Clock
	Slots         int
	Categories    []Category
	BufferMinutes int
}

// DurationHours is the block length in hours, overnight aware.
func (b TimeBlock) DurationHours() float64 {
	start := int(b.Start)
	end := int(b.End)
	if end < start {
		end += minutesPerDay
	}
	return float64(end-start) / 60.0
}

// AvailableHours is the block duration minus the safety buffer.
func (b TimeBlock) AvailableHours() float64 {
	return b.DurationHours() - float64(b.BufferMinutes)/60.0
}

// AllowedTypes returns every place type acceptable for this block.
func (b TimeBlock) AllowedTypes() []string { return TypesForCategories(b.Categories) }

// TimeRange renders the window as "HH:MM - HH:MM".
func (b TimeBlock) TimeRange() string { return b.Start.String() + " - " + b.End.String() }

// DailySchedule returns the fixed seven-block day in order. The slice is
// rebuilt on each call so callers can never mutate shared configuration.
func DailySchedule() []TimeBlock {
	return []TimeBlock{
		{Kind: KindBreakfast, Start: NewClock(7, 0), End: NewClock(8, 0), Slots: 1, Categories: []Category{CategoryCafe}, BufferMinutes: 10},
		{Kind: KindMorning, Start: NewClock(8, 0), End: NewClock(11, 0), Slots: 2, Categories: []Category{CategoryActivity}, BufferMinutes: 20},
		{Kind: KindLunch, Start: NewClock(11, 0), End: NewClock(13, 0), Slots: 1, Categories: []Category{CategoryRestaurant}, BufferMinutes: 15},
		{Kind: KindAfternoon, Start: NewClock(13, 0), End: NewClock(18, 30), Slots: 3, Categories: []Category{CategoryActivity}, BufferMinutes: 30},
		{Kind: KindDinner, Start: NewClock(18, 30), End: NewClock(20, 30), Slots: 1, Categories: []Category{CategoryRestaurant}, BufferMinutes: 15},
		{Kind: KindEvening, Start: NewClock(20, 30), End: NewClock(22, 0), Slots: 1, Categories: []Category{CategoryActivity, CategoryCafe}, BufferMinutes: 10},
		{Kind: KindHotel, Start: NewClock(22, 0), End: NewClock(7, 0), Slots: 1, Categories: []Category{CategoryHotel}, BufferMinutes: 0},
	}
}

// ScheduleLength is the number of blocks in a planned day.
const ScheduleLength = 7

var visitDurations = map[BlockKind]float64{
	KindBreakfast: 0.75,
	KindLunch:     1.0,
	KindDinner:    1.5,
	KindMorning:   1.0,
	KindAfternoon: 1.25,
	KindEvening:   1.0,
	KindHotel:     9.0,
}

// VisitDuration is the default stay length in hours for one place in a
// block of the given kind.
func VisitDuration(kind BlockKind) float64 {
	if d, ok := visitDurations[kind]; ok {
		return d
	}
	return 1.0
}

// Config carries the planner's tunable limits. The combination-search
// bounds are explicit here because permutation enumeration grows
// factorially with the slot count.
type Config struct {
	// TopK caps candidate pools handed to the scheduler.
	TopK int
	// MinRating is the minimum place rating considered at all.
	MinRating float64
	// RequiredCoverage is the opening-hours coverage threshold.
	RequiredCoverage float64
	// BreakfastCoverage relaxes the threshold for the breakfast block.
	BreakfastCoverage float64
	// MealShortlist is how many top-ranked meal candidates get a full
	// travel evaluation.
	MealShortlist int
	// MaxComboCandidates bounds the combination search input size.
	MaxComboCandidates int
	// MaxSlotsPerBlock bounds the permutation depth.
	MaxSlotsPerBlock int
	// FallbackGapHours is the spacing used by the non-optimized packing
	// fallback.
	FallbackGapHours float64
}

// DefaultConfig mirrors the production tuning.
func DefaultConfig() Config {
	return Config{
		TopK:               50,
		MinRating:          3.5,
		RequiredCoverage:   0.7,
		BreakfastCoverage:  0.3,
		MealShortlist:      10,
		MaxComboCandidates: 20,
		MaxSlotsPerBlock:   3,
		FallbackGapHours:   0.5,
	}
}
