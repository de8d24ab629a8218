package domain

// QuestCatalog lists the quests the venue offers.
// An empty catalog accepts any non-empty quest id.
type QuestCatalog []QuestID

// NewQuestCatalog builds a catalog from plain names.
func NewQuestCatalog(names ...string) QuestCatalog {
	catalog := make(QuestCatalog, 0, len(names))
	for _, n := range names {
		catalog = append(catalog, QuestID(n))
	}
	return catalog
}

// Contains reports whether quest is offered.
func (c QuestCatalog) Contains(quest QuestID) bool {
	if quest == "" {
		return false
	}
	if len(c) == 0 {
		return true
	}
	for _, q := range c {
		if q == quest {
			return true
		}
	}
	return false
}
