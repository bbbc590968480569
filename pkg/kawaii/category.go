package kawaii

import (
	"fmt"
	"sort"
	"strings"
)

// Category selects the GIF collection served by an endpoint. The members mirror
// the endpoint list published by kawaii.red; the wire form is the tag itself.
type Category string

const (
	CategoryAlarm     Category = "alarm"
	CategoryAmazing   Category = "amazing"
	CategoryAsk       Category = "ask"
	CategoryBaka      Category = "baka"
	CategoryBite      Category = "bite"
	CategoryBlush     Category = "blush"
	CategoryBlyat     Category = "blyat"
	CategoryBoop      Category = "boop"
	CategoryClap      Category = "clap"
	CategoryCoffee    Category = "coffee"
	CategoryConfused  Category = "confused"
	CategoryCry       Category = "cry"
	CategoryCuddle    Category = "cuddle"
	CategoryCute      Category = "cute"
	CategoryDance     Category = "dance"
	CategoryDestroy   Category = "destroy"
	CategoryDie       Category = "die"
	CategoryDisappear Category = "disappear"
	CategoryDodge     Category = "dodge"
	CategoryError     Category = "error"
	CategoryFaceDesk  Category = "facedesk"
	CategoryFacePalm  Category = "facepalm"
	CategoryFBI       Category = "fbi"
	CategoryFight     Category = "fight"
	CategoryHappy     Category = "happy"
	CategoryHide      Category = "hide"
	CategoryHighFive  Category = "highfive"
	CategoryHug       Category = "hug"
	CategoryKill      Category = "kill"
	CategoryKiss      Category = "kiss"
	CategoryLaugh     Category = "laugh"
	CategoryLick      Category = "lick"
	CategoryLonely    Category = "lonely"
	CategoryLove      Category = "love"
	CategoryMad       Category = "mad"
	CategoryMoney     Category = "money"
	CategoryNom       Category = "nom"
	CategoryNoseBleed Category = "nosebleed"
	CategoryOK        Category = "ok"
	CategoryParty     Category = "party"
	CategoryPat       Category = "pat"
	CategoryPeek      Category = "peek"
	CategoryPoke      Category = "poke"
	CategoryPout      Category = "pout"
	CategoryProtect   Category = "protect"
	CategoryPuke      Category = "puke"
	CategoryPunch     Category = "punch"
	CategoryPurr      Category = "purr"
	CategoryPusheen   Category = "pusheen"
	CategoryRun       Category = "run"
	CategorySalute    Category = "salute"
	CategoryScared    Category = "scared"
	CategoryScream    Category = "scream"
	CategoryShame     Category = "shame"
	CategoryShocked   Category = "shocked"
	CategoryShoot     Category = "shoot"
	CategoryShrug     Category = "shrug"
	CategorySip       Category = "sip"
	CategorySit       Category = "sit"
	CategorySlap      Category = "slap"
	CategorySleepy    Category = "sleepy"
	CategorySmile     Category = "smile"
	CategorySmoke     Category = "smoke"
	CategorySmug      Category = "smug"
	CategorySpin      Category = "spin"
	CategoryStare     Category = "stare"
	CategoryStomp     Category = "stomp"
	CategoryTickle    Category = "tickle"
	CategoryTrap      Category = "trap"
	CategoryTriggered Category = "triggered"
	CategoryUwU       Category = "uwu"
	CategoryWasted    Category = "wasted"
	CategoryWave      Category = "wave"
	CategoryWiggle    Category = "wiggle"
	CategoryWink      Category = "wink"
	CategoryYeet      Category = "yeet"
)

var knownCategories = []Category{
	CategoryAlarm, CategoryAmazing, CategoryAsk, CategoryBaka,
	CategoryBite, CategoryBlush, CategoryBlyat, CategoryBoop,
	CategoryClap, CategoryCoffee, CategoryConfused, CategoryCry,
	CategoryCuddle, CategoryCute, CategoryDance, CategoryDestroy,
	CategoryDie, CategoryDisappear, CategoryDodge, CategoryError,
	CategoryFaceDesk, CategoryFacePalm, CategoryFBI, CategoryFight,
	CategoryHappy, CategoryHide, CategoryHighFive, CategoryHug,
	CategoryKill, CategoryKiss, CategoryLaugh, CategoryLick,
	CategoryLonely, CategoryLove, CategoryMad, CategoryMoney,
	CategoryNom, CategoryNoseBleed, CategoryOK, CategoryParty,
	CategoryPat, CategoryPeek, CategoryPoke, CategoryPout,
	CategoryProtect, CategoryPuke, CategoryPunch, CategoryPurr,
	CategoryPusheen, CategoryRun, CategorySalute, CategoryScared,
	CategoryScream, CategoryShame, CategoryShocked, CategoryShoot,
	CategoryShrug, CategorySip, CategorySit, CategorySlap,
	CategorySleepy, CategorySmile, CategorySmoke, CategorySmug,
	CategorySpin, CategoryStare, CategoryStomp, CategoryTickle,
	CategoryTrap, CategoryTriggered, CategoryUwU, CategoryWasted,
	CategoryWave, CategoryWiggle, CategoryWink, CategoryYeet,
}

var categoryIndex = func() map[Category]struct{} {
	idx := make(map[Category]struct{}, len(knownCategories))
	for _, c := range knownCategories {
		idx[c] = struct{}{}
	}
	return idx
}()

// Categories returns every supported category sorted by tag.
func Categories() []Category {
	out := make([]Category, len(knownCategories))
	copy(out, knownCategories)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseCategory converts user input into a Category. Matching ignores case and
// surrounding whitespace.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
	}
	return c, nil
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	_, ok := categoryIndex[c]
	return ok
}

func (c Category) String() string { return string(c) }
