// Package spells matches incantations against the examination's spell
// dictionary, exactly or within a small edit distance.
package spells

// Spell is a canonical incantation.
type Spell string

// Category groups spells by the kind of magic they perform.
type Category string

const (
	CategoryLight        Category = "light"
	CategoryDefense      Category = "defense"
	CategoryOffense      Category = "offense"
	CategoryUtility      Category = "utility"
	CategoryHealing      Category = "healing"
	CategoryUnforgivable Category = "unforgivable"
)

// Categories lists the categories in dictionary order.
var Categories = []Category{
	CategoryLight, CategoryDefense, CategoryOffense,
	CategoryUtility, CategoryHealing, CategoryUnforgivable,
}

const (
	Lumos              Spell = "lumos"
	LumosMaxima        Spell = "lumos maxima"
	Nox                Spell = "nox"
	Protego            Spell = "protego"
	ProtegoMaxima      Spell = "protego maxima"
	ExpectoPatronum    Spell = "expecto patronum"
	SalvioHexia        Spell = "salvio hexia"
	Stupefy            Spell = "stupefy"
	Expelliarmus       Spell = "expelliarmus"
	PetrificusTotalus  Spell = "petrificus totalus"
	Impedimenta        Spell = "impedimenta"
	Reducto            Spell = "reducto"
	Incendio           Spell = "incendio"
	Confringo          Spell = "confringo"
	Bombarda           Spell = "bombarda"
	Diffindo           Spell = "diffindo"
	Flipendo           Spell = "flipendo"
	Depulso            Spell = "depulso"
	Rictusempra        Spell = "rictusempra"
	Incarcerous        Spell = "incarcerous"
	Levicorpus         Spell = "levicorpus"
	LocomotorMortis    Spell = "locomotor mortis"
	Tarantallegra      Spell = "tarantallegra"
	Densaugeo          Spell = "densaugeo"
	Furnunculus        Spell = "furnunculus"
	Sectumsempra       Spell = "sectumsempra"
	WingardiumLeviosa  Spell = "wingardium leviosa"
	Accio              Spell = "accio"
	Alohomora          Spell = "alohomora"
	Reparo             Spell = "reparo"
	Revelio            Spell = "revelio"
	HomenumRevelio     Spell = "homenum revelio"
	FiniteIncantatem   Spell = "finite incantatem"
	Aguamenti          Spell = "aguamenti"
	Sonorus            Spell = "sonorus"
	Quietus            Spell = "quietus"
	PointMe            Spell = "point me"
	Pack               Spell = "pack"
	Reducio            Spell = "reducio"
	Engorgio           Spell = "engorgio"
	Confundo           Spell = "confundo"
	Obliviate          Spell = "obliviate"
	Muffliato          Spell = "muffliato"
	Episkey            Spell = "episkey"
	VulneraSanentur    Spell = "vulnera sanentur"
	Tergeo             Spell = "tergeo"
	AvadaKedavra       Spell = "avada kedavra"
	Crucio             Spell = "crucio"
	Imperio            Spell = "imperio"

	// Unknown marks an incantation-length input that matched nothing.
	Unknown Spell = "unknown_spell"
)

// Entry is one dictionary row.
type Entry struct {
	Spell    Spell
	Category Category
}

// Dictionary is the fixed spell vocabulary. Its order breaks fuzzy-match ties.
var Dictionary = []Entry{
	{Lumos, CategoryLight},
	{LumosMaxima, CategoryLight},
	{Nox, CategoryLight},

	{Protego, CategoryDefense},
	{ProtegoMaxima, CategoryDefense},
	{ExpectoPatronum, CategoryDefense},
	{SalvioHexia, CategoryDefense},

	{Stupefy, CategoryOffense},
	{Expelliarmus, CategoryOffense},
	{PetrificusTotalus, CategoryOffense},
	{Impedimenta, CategoryOffense},
	{Reducto, CategoryOffense},
	{Incendio, CategoryOffense},
	{Confringo, CategoryOffense},
	{Bombarda, CategoryOffense},
	{Diffindo, CategoryOffense},
	{Flipendo, CategoryOffense},
	{Depulso, CategoryOffense},
	{Rictusempra, CategoryOffense},
	{Incarcerous, CategoryOffense},
	{Levicorpus, CategoryOffense},
	{LocomotorMortis, CategoryOffense},
	{Tarantallegra, CategoryOffense},
	{Densaugeo, CategoryOffense},
	{Furnunculus, CategoryOffense},
	{Sectumsempra, CategoryOffense},

	{WingardiumLeviosa, CategoryUtility},
	{Accio, CategoryUtility},
	{Alohomora, CategoryUtility},
	{Reparo, CategoryUtility},
	{Revelio, CategoryUtility},
	{HomenumRevelio, CategoryUtility},
	{FiniteIncantatem, CategoryUtility},
	{Aguamenti, CategoryUtility},
	{Sonorus, CategoryUtility},
	{Quietus, CategoryUtility},
	{PointMe, CategoryUtility},
	{Pack, CategoryUtility},
	{Reducio, CategoryUtility},
	{Engorgio, CategoryUtility},
	{Confundo, CategoryUtility},
	{Obliviate, CategoryUtility},
	{Muffliato, CategoryUtility},

	{Episkey, CategoryHealing},
	{VulneraSanentur, CategoryHealing},
	{Tergeo, CategoryHealing},

	{AvadaKedavra, CategoryUnforgivable},
	{Crucio, CategoryUnforgivable},
	{Imperio, CategoryUnforgivable},
}

var byName = func() map[Spell]Category {
	m := make(map[Spell]Category, len(Dictionary))
	for _, e := range Dictionary {
		m[e.Spell] = e.Category
	}
	return m
}()

// Result is a successful match.
type Result struct {
	Spell    Spell
	Category Category
	Exact    bool
}

// Match looks text up in the dictionary. text is expected lowercased and
// trimmed. Entries longer than 8 characters tolerate two edits, shorter
// ones a single edit. The closest entry wins; ties go to the entry that
// appears first in Dictionary.
func Match(text string) (Result, bool) {
	if cat, ok := byName[Spell(text)]; ok {
		return Result{Spell: Spell(text), Category: cat, Exact: true}, true
	}

	best := -1
	bestDist := 0
	for i, e := range Dictionary {
		limit := 1
		if len(e.Spell) > 8 {
			limit = 2
		}
		d := Distance(text, string(e.Spell))
		if d > limit {
			continue
		}
		if best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best == -1 {
		return Result{}, false
	}
	e := Dictionary[best]
	return Result{Spell: e.Spell, Category: e.Category, Exact: bestDist == 0}, true
}

// CategoryOf returns the category of a dictionary spell.
func CategoryOf(s Spell) (Category, bool) {
	cat, ok := byName[s]
	return cat, ok
}

// IsUnforgivable reports whether text matches a forbidden curse.
func IsUnforgivable(text string) bool {
	r, ok := Match(text)
	return ok && r.Category == CategoryUnforgivable
}

// InCategory returns the dictionary spells of one category, in order.
func InCategory(c Category) []Spell {
	var out []Spell
	for _, e := range Dictionary {
		if e.Category == c {
			out = append(out, e.Spell)
		}
	}
	return out
}

// Distance is the Levenshtein edit distance between a and b.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
