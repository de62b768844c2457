package service

import (
	"github.com/ratel-online/landlord/landlord/card"
)

// Entry is one accepted play or pass in the current trick.
type Entry struct {
	Index int
	Seat  string
	Cards card.Cards
}

func (e Entry) Pass() bool {
	return len(e.Cards) == 0
}

// Pile keeps the trick history in play order.
type Pile struct {
	entries []Entry
}

func NewPile() *Pile {
	return &Pile{entries: make([]Entry, 0, 16)}
}

func (p *Pile) Add(index int, seat string, cards card.Cards) {
	played := make(card.Cards, len(cards))
	copy(played, cards)
	p.entries = append(p.entries, Entry{Index: index, Seat: seat, Cards: played})
}

func (p *Pile) Entries() []Entry {
	entries := make([]Entry, len(p.entries))
	copy(entries, p.entries)
	return entries
}

// Top returns the last entry that was not a pass.
func (p *Pile) Top() (Entry, bool) {
	for i := len(p.entries) - 1; i >= 0; i-- {
		if !p.entries[i].Pass() {
			return p.entries[i], true
		}
	}
	return Entry{}, false
}

func (p *Pile) Clear() {
	p.entries = p.entries[:0]
}
