package entity

// Category identifies one class of incoming game-state event. Every
// subscriber filter entry, access entitlement and notification item is
// scoped to exactly one category.
type Category string

const (
	CategoryCreature     Category = "creature"
	CategoryRankedBattle Category = "rankedbattle"
	CategoryRaid         Category = "raid"
	CategoryQuest        Category = "quest"
	CategoryInvasion     Category = "invasion"
	CategoryLure         Category = "lure"
	CategoryGym          Category = "gym"
)

// Categories lists every known category in a stable order.
func Categories() []Category {
	return []Category{
		CategoryCreature,
		CategoryRankedBattle,
		CategoryRaid,
		CategoryQuest,
		CategoryInvasion,
		CategoryLure,
		CategoryGym,
	}
}

func (c Category) String() string {
	return string(c)
}
