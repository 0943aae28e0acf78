package joker

import "fmt"

// ID is the stable identifier of a joker kind. IDs are the registry and
// factory key and the reference persisted in save state, so values must
// never be renamed once shipped.
type ID string

const (
	TheJoker        ID = "joker"
	GreedyJoker     ID = "greedy_joker"
	LustyJoker      ID = "lusty_joker"
	WrathfulJoker   ID = "wrathful_joker"
	GluttonousJoker ID = "gluttonous_joker"
	JollyJoker      ID = "jolly_joker"
	ZanyJoker       ID = "zany_joker"
	MadJoker        ID = "mad_joker"
	CrazyJoker      ID = "crazy_joker"
	DrollJoker      ID = "droll_joker"
	SlyJoker        ID = "sly_joker"
	WilyJoker       ID = "wily_joker"
	CleverJoker     ID = "clever_joker"
	DeviousJoker    ID = "devious_joker"
	CraftyJoker     ID = "crafty_joker"
	HalfJoker       ID = "half_joker"
	Banner          ID = "banner"
	MysticSummit    ID = "mystic_summit"
	Misprint        ID = "misprint"
	RaisedFist      ID = "raised_fist"
	Fibonacci       ID = "fibonacci"
	ScaryFace       ID = "scary_face"
	AbstractJoker   ID = "abstract_joker"
	DelayedGrat     ID = "delayed_gratification"
	EvenSteven      ID = "even_steven"
	OddTodd         ID = "odd_todd"
	Scholar         ID = "scholar"
	BusinessCard    ID = "business_card"
	Supernova       ID = "supernova"
	RideTheBus      ID = "ride_the_bus"
	Egg             ID = "egg"
	Burglar         ID = "burglar"
	Blackboard      ID = "blackboard"
	Runner          ID = "runner"
	IceCream        ID = "ice_cream"
	BlueJoker       ID = "blue_joker"
	FacelessJoker   ID = "faceless_joker"
	GreenJoker      ID = "green_joker"
	SquareJoker     ID = "square_joker"
	RedCard         ID = "red_card"
	WalkieTalkie    ID = "walkie_talkie"
	Seltzer         ID = "seltzer"
	Castle          ID = "castle"
	SmileyFace      ID = "smiley_face"
	Acrobat         ID = "acrobat"
	SockAndBuskin   ID = "sock_and_buskin"
	Bloodstone      ID = "bloodstone"
	Arrowhead       ID = "arrowhead"
	OnyxAgate       ID = "onyx_agate"
	RoughGem        ID = "rough_gem"
	SteelJoker      ID = "steel_joker"
	StoneJoker      ID = "stone_joker"
	LuckyCat        ID = "lucky_cat"
	Bull            ID = "bull"
	Popcorn         ID = "popcorn"
	SpareTrousers   ID = "spare_trousers"
	Baron           ID = "baron"
	Photograph      ID = "photograph"
	ToTheMoon       ID = "to_the_moon"
	Juggler         ID = "juggler"
	Drunkard        ID = "drunkard"
	GoldenJoker     ID = "golden_joker"
	CeremonialDagger ID = "ceremonial_dagger"
	Dusk            ID = "dusk"
	Hack            ID = "hack"
	GiftCard        ID = "gift_card"
	Erosion         ID = "erosion"
	Throwback       ID = "throwback"
	Rocket          ID = "rocket"
	Hiker           ID = "hiker"
	AncientJoker    ID = "ancient_joker"
	Blueprint       ID = "blueprint"
	WeeJoker        ID = "wee_joker"
	MerryAndy       ID = "merry_andy"
	OopsAllSixes    ID = "oops_all_sixes"
	TheDuo          ID = "the_duo"
	TheTrio         ID = "the_trio"
	TheFamily       ID = "the_family"
	TheOrder        ID = "the_order"
	TheTribe        ID = "the_tribe"
	Stuntman        ID = "stuntman"
	ShootTheMoon    ID = "shoot_the_moon"
	Bootstraps      ID = "bootstraps"
	Triboulet       ID = "triboulet"
	LoyaltyCard     ID = "loyalty_card"
	Vagabond        ID = "vagabond"
	GrosMichel      ID = "gros_michel"
	Cavendish       ID = "cavendish"
	CardSharp       ID = "card_sharp"
	Obelisk         ID = "obelisk"
	Campfire        ID = "campfire"
	Rebate          ID = "mail_in_rebate"
	ReservedParking ID = "reserved_parking"
	Ramen           ID = "ramen"
	Seance          ID = "seance"
	Vampire         ID = "vampire"
	MidasMask       ID = "midas_mask"
	TurtleBean      ID = "turtle_bean"
	SpaceJoker      ID = "space_joker"
	Superposition   ID = "superposition"
	EightBall       ID = "eight_ball"
	GoldenTicket    ID = "golden_ticket"
	Troubadour      ID = "troubadour"
	FlowerPot       ID = "flower_pot"
	CustomScripted  ID = "custom_scripted"
)

// ParseID validates a persisted identifier string against the registry.
// Unknown identifiers are an error, never a fallback instance: a silent
// default would mask save-data corruption.
func ParseID(s string) (ID, error) {
	id := ID(s)
	if _, ok := Default().Lookup(id); !ok {
		return "", fmt.Errorf("joker: %w: %q", ErrUnknownJoker, s)
	}
	return id, nil
}
