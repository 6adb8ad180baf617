package screen

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rashidq/quranadmin/pkg/model"
)

func TestKeyedListAdd(t *testing.T) {
	l := NewKeyedList[model.AyahRef]()

	if err := l.Add(model.AyahRef{Sura: 2, Aya: 255, Notes: "Ayat al-Kursi"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := l.Add(model.AyahRef{Sura: 1, Aya: 1}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// same verse again, different notes: the first one wins
	err := l.Add(model.AyahRef{Sura: 2, Aya: 255, Notes: "duplicate"})
	if !errors.Is(err, ErrDuplicateItem) {
		t.Fatalf("Add duplicate = %v, want ErrDuplicateItem", err)
	}

	want := []model.AyahRef{
		{Sura: 2, Aya: 255, Notes: "Ayat al-Kursi"},
		{Sura: 1, Aya: 1},
	}
	if diff := cmp.Diff(want, l.Items()); diff != "" {
		t.Errorf("Items mismatch (-want +got):\n%s", diff)
	}
}

func TestKeyedListAddValidates(t *testing.T) {
	l := NewKeyedList[model.AyahRef]()

	if err := l.Add(model.AyahRef{Sura: 0, Aya: 1}); err == nil {
		t.Error("Add accepted an ayah without a surah number")
	}
	if l.Len() != 0 {
		t.Errorf("Len = %d after rejected Add, want 0", l.Len())
	}
}

func TestKeyedListMergeFirstWins(t *testing.T) {
	l := NewKeyedList[model.Question]()

	local := model.Question{
		Text:          "How many surahs are in the Quran?",
		OptionA:       "110",
		OptionB:       "114",
		OptionC:       "120",
		OptionD:       "99",
		CorrectAnswer: "B",
	}
	if err := l.Add(local); err != nil {
		t.Fatalf("Add: %v", err)
	}

	server := local
	server.ID = 9
	server.CorrectAnswer = "A"
	l.Merge([]model.Question{
		server,
		{ID: 10, Text: "Which surah is called the heart of the Quran?"},
	})

	items := l.Items()
	if len(items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(items))
	}
	if items[0].CorrectAnswer != "B" || items[0].ID != 0 {
		t.Errorf("merge replaced the earlier occurrence: %+v", items[0])
	}
	// merged server rows skip validation
	if items[1].ID != 10 {
		t.Errorf("server-only row missing: %+v", items[1])
	}
}

func TestKeyedListRemove(t *testing.T) {
	l := NewKeyedList[model.AyahRef]()
	for _, a := range []model.AyahRef{{Sura: 1, Aya: 1}, {Sura: 2, Aya: 255}, {Sura: 36, Aya: 1}} {
		if err := l.Add(a); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	l.Remove("2:255")
	l.Remove("no-such-key")

	want := []model.AyahRef{{Sura: 1, Aya: 1}, {Sura: 36, Aya: 1}}
	if diff := cmp.Diff(want, l.Items()); diff != "" {
		t.Errorf("Items after Remove (-want +got):\n%s", diff)
	}

	// the freed key is usable again and lands at the end
	if err := l.Add(model.AyahRef{Sura: 2, Aya: 255}); err != nil {
		t.Fatalf("re-Add after Remove: %v", err)
	}
	if got := l.Items()[2]; got.Key() != "2:255" {
		t.Errorf("re-added item at %v", got)
	}
}

func TestKeyedListItemsIsACopy(t *testing.T) {
	l := NewKeyedList[model.AyahRef]()
	if err := l.Add(model.AyahRef{Sura: 1, Aya: 1}); err != nil {
		t.Fatal(err)
	}

	items := l.Items()
	items[0].Notes = "mutated"

	if l.Items()[0].Notes != "" {
		t.Error("mutating the returned slice changed the list")
	}
}
