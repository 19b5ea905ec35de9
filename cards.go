package main

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

type CardType string

const (
	CardCaption CardType = "caption"
	CardPhoto   CardType = "photo"
)

// Card is a catalog entry. The catalog is read-only after process start;
// rooms play with copies, never with the catalog itself.
type Card struct {
	ID          string   `json:"id"`
	Type        CardType `json:"type"`
	Content     string   `json:"content"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Description string   `json:"description,omitempty"`
}

// CaptionCard is the in-play shape of a caption catalog entry.
type CaptionCard struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// PhotoCard is the denormalized photo snapshot stored on a room while a
// round is in progress.
type PhotoCard struct {
	ID          string `json:"id"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

type Catalog struct {
	cards    map[string]Card
	captions []CaptionCard
	photos   []Card
}

func newCatalog(cards []Card) *Catalog {
	c := &Catalog{
		cards: make(map[string]Card, len(cards)),
	}

	for _, card := range cards {
		c.cards[card.ID] = card

		switch card.Type {
		case CardCaption:
			c.captions = append(c.captions, CaptionCard{
				ID:   card.ID,
				Text: card.Content,
			})
		case CardPhoto:
			c.photos = append(c.photos, card)
		}
	}

	return c
}

func (c *Catalog) Card(id string) (Card, bool) {
	card, ok := c.cards[id]
	return card, ok
}

func (c *Catalog) ByType(t CardType) []Card {
	out := make([]Card, 0, len(c.cards))
	for _, card := range c.cards {
		if card.Type == t {
			out = append(out, card)
		}
	}
	return out
}

// Captions returns a fresh copy of the full caption deck, safe for a room
// to shuffle and consume.
func (c *Catalog) Captions() []CaptionCard {
	out := make([]CaptionCard, len(c.captions))
	copy(out, c.captions)
	return out
}

// Photos returns the photo cards in catalog order.
func (c *Catalog) Photos() []Card {
	out := make([]Card, len(c.photos))
	copy(out, c.photos)
	return out
}

func (c *Catalog) CaptionCount() int {
	return len(c.captions)
}

// loadCatalog builds the card catalog, either from a sqlite card database
// or from the built-in decks.
func loadCatalog(cfg *Config) (*Catalog, error) {
	if cfg.cardDB == "" {
		return defaultCatalog(), nil
	}
	return openCardDatabase(cfg.cardDB)
}

// openCardDatabase reads custom decks from a sqlite file. The schema is
// created if absent so deck authors can seed an empty file in place.
func openCardDatabase(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open card database: %w", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		return nil, fmt.Errorf("configure card database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS cards (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL CHECK (type IN ('caption', 'photo')),
		content TEXT NOT NULL,
		image_url TEXT,
		description TEXT
	);`); err != nil {
		return nil, fmt.Errorf("apply card schema: %w", err)
	}

	rows, err := db.Query(`SELECT id, type, content, COALESCE(image_url, ''), COALESCE(description, '') FROM cards;`)
	if err != nil {
		return nil, fmt.Errorf("read cards: %w", err)
	}
	defer rows.Close()

	var cards []Card
	for rows.Next() {
		var card Card
		if err := rows.Scan(&card.ID, &card.Type, &card.Content, &card.ImageURL, &card.Description); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read cards: %w", err)
	}

	catalog := newCatalog(cards)
	if len(catalog.captions) == 0 || len(catalog.photos) == 0 {
		return nil, fmt.Errorf("card database %s needs at least one caption and one photo card", path)
	}

	return catalog, nil
}

const (
	defaultCaptionCount = 360
	defaultPhotoCount   = 75
)

// defaultCatalog builds the built-in decks, padded to the same fixed sizes
// every process start so all rooms play with identical card pools.
func defaultCatalog() *Catalog {
	captions := defaultCaptions()
	for i := len(captions); i < defaultCaptionCount; i++ {
		captions = append(captions, fmt.Sprintf("Meme caption %d", i+1))
	}

	photos := defaultPhotos()
	for i := len(photos); i < defaultPhotoCount; i++ {
		photos = append(photos, photoEntry{
			imageURL:    fmt.Sprintf("https://images.unsplash.com/photo-151488828697%d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", 4+i),
			description: fmt.Sprintf("Meme photo %d", i+1),
		})
	}

	cards := make([]Card, 0, len(captions)+len(photos))

	for _, text := range captions {
		cards = append(cards, Card{
			ID:      uuid.NewString(),
			Type:    CardCaption,
			Content: text,
		})
	}

	for _, photo := range photos {
		cards = append(cards, Card{
			ID:          uuid.NewString(),
			Type:        CardPhoto,
			Content:     photo.description,
			ImageURL:    photo.imageURL,
			Description: photo.description,
		})
	}

	return newCatalog(cards)
}

type photoEntry struct {
	imageURL    string
	description string
}

func defaultCaptions() []string {
	return []string{
		"Oh great, another Monday. Just what I needed.",
		"Sure, pineapple totally belongs on pizza… said no one sane.",
		"Me pretending to care about your weekend plans.",
		"Ah yes, my degree in Googling answers finally paying off.",
		"Love it when Netflix asks if I’m still watching. No Karen, I’m rotting.",
		"Me after going to the gym once: fitness influencer.",
		"Wow, adulting is so fun. Bills, taxes, emotional damage… sign me up.",
		"When your boss says 'we’re like a family' but pays you in exposure.",
		"That moment you realize your 'five-year plan' was just surviving.",
		"Nothing screams confidence like pushing a pull door.",
		"When you open the front camera: jump scare edition.",
		"Love that for me—battery dies at 1% right when life gets interesting.",
		"Me, trying to flirt: so… do you like bread?",
		"That awkward silence when you laugh at your own joke and nobody else does.",
		"Yes, I totally understood that math problem. Said me, never.",
		"When your crush waves… but it’s actually to the person behind you.",
		"Wow, so cool, you woke up at 5am to 'hustle.' I woke up at noon and cried.",
		"When you remember something embarrassing you did 10 years ago. Cute.",
		"Love it when my Uber driver gives me free trauma with the ride.",
		"Me: 'I’ll only have one cookie.' Also me: *eats the entire pack*.",
		"Oh sure, WiFi, take your time. It’s not like I needed the internet to live.",
		"When someone says 'money can’t buy happiness.' Okay, give me yours then.",
		"Me on Monday: I’ll eat clean this week. Me on Tuesday: *deep-fried sadness*.",
		"Yes, let’s all take turns showing vacation photos no one asked for.",
		"When you text 'I miss you' and they reply with 'k.' Love that energy.",
		"Wow, adulthood is just asking 'what’s for dinner' until you die.",
		"Me after oversharing in a group chat: Witness protection, please.",
		"That magical moment when your pet ignores you like everyone else does.",
		"Love when my stomach growls louder than my personality.",
		"When Spotify plays sad songs like it knows my trauma personally.",
		"Cool, autocorrect. I definitely meant to text my boss 'I love you.'",
		"Oh great, another email saying 'per my last email.' My favorite genre: passive aggression.",
		"Me: *studies for 10 minutes*. Brain: okay we deserve a 3-hour nap now.",
		"Nothing like tripping in public to humble you instantly.",
		"When someone says 'let’s circle back.' Translation: let’s never talk about this again.",
		"That face when your Uber Eats order is 'delivered' but nowhere to be found.",
		"Wow, so quirky, you play guitar. Teach me Wonderwall, Chad.",
		"When the teacher says 'pair up' and suddenly you’re invisible.",
		"Yes, Karen, please tell me again how essential oils cure everything.",
		"Oh wow, the printer jammed again. Truly groundbreaking technology.",
		"When you clap back perfectly… three hours too late.",
		"My favorite hobby? Pretending my life is a sitcom while crying.",
		"When you realize your 'emergency fund' is just $5 and a coupon.",
		"Oh joy, the elevator is stuck. Love my new panic room.",
		"When someone says 'you’ve changed.' Yeah, it’s called growth, Brenda.",
		"Wow, what a surprise, my horoscope says 'bad luck.' Groundbreaking.",
		"When you sneeze in public and people look at you like Patient Zero.",
		"Love that for me—accidentally liked a 6-year-old Instagram photo at 3am.",
		"That magical moment when your alarm clock ruins your dreams.",
		"Me after folding laundry: Olympic gold medalist in procrastination.",
		"Nothing screams romance like arguing about where to eat.",
		"When the waiter says 'enjoy your meal' and I say 'you too.'",
		"That smile you give when your WiFi finally works again.",
		"Oh sure, let’s do 'trust falls.' I totally trust you, Chad.",
		"When your mom says 'we need to talk.' RIP me.",
		"The joy of realizing you’ve been muted on Zoom for 20 minutes.",
		"Love that awkward moment when your stomach makes whale noises.",
		"Me pretending I know how taxes work.",
		"When your AirPods die mid-walk and now you’re just… existing.",
		"The look you give when your phone autocorrects to 'duck.'",
		"When you binge-watch a whole season and Netflix judges you.",
		"That magical time when your bank balance is just 'try again.'",
		"When you realize your bed is the only one who understands you.",
		"Oh sure, let’s all pretend we know what 'crypto' means.",
		"Me after eating one salad: bodybuilder mode activated.",
		"When someone claps after the plane lands… chill, hero.",
		"That smile you give when the barista spells your name wrong again.",
		"Nothing like realizing the WiFi password is case sensitive.",
		"When you accidentally send a meme to the wrong chat. Bye forever.",
		"Oh cool, another wedding invite I can’t afford.",
		"When you laugh at a meme but realize it’s about you.",
		"Me explaining to my dog why I can’t share my food.",
		"The thrill of realizing your jeans shrank (or maybe it’s you).",
		"When you walk into a room and forget why you’re there.",
		"That joy when someone says 'let’s split the bill evenly.'",
		"When you sneeze and everyone says 'bless you' like they care.",
		"Love that for me—3 alarms set and still overslept.",
		"When your GPS says 'recalculating.' Mood.",
		"Me pretending my iced coffee is a personality trait.",
		"When you get tagged in an ugly photo and can’t unsee it.",
		"The fun of realizing your package is 'still in transit.'",
		"When your friend cancels plans and you’re secretly relieved.",
		"That moment when autocorrect changes 'no' to 'moist.'",
		"Oh cool, another inspirational quote I’ll never use.",
		"When you reply 'haha' but you’re actually dying inside.",
		"Me explaining my life choices to the mirror: questionable.",
		"When someone eats loudly and you plot their downfall.",
		"That second when you realize your mic was never muted.",
		"Me pretending I like hiking for the Instagram photo.",
		"When the group chat ignores your meme. Betrayal.",
		"Love it when my pet judges me harder than humans.",
		"That sinking feeling when your card declines for $3.",
		"Me after cooking one meal: world-class chef.",
		"When you click 'reply all' by mistake. Instant regret.",
		"That face when the vending machine steals your money.",
		"When someone texts 'we need to talk.' Pure panic.",
		"Me laughing at my own jokes since no one else will.",
		"That thrill when you find fries at the bottom of the bag.",
		"When your crush says 'bro.' Friend-zoned forever.",
		"Oh, you meditate? I stress-eat Doritos. Same thing.",
		"When you wear white and instantly spill coffee on it.",
		"That magic moment when your laptop updates mid-meeting.",
		"When you rewatch childhood shows and realize they were weird.",
		"Me pretending I know how to use Excel.",
		"When someone waves and you wave back… wrong person.",
		"That feeling when Spotify ads attack your broke soul.",
		"Me trying to parallel park with witnesses around.",
		"When someone says 'rise and grind.' I’d rather nap.",
		"That smile when your food delivery finally arrives.",
		"When you sneeze three times and people say 'stop.'",
		"Oh look, another influencer selling fake happiness.",
		"When you accidentally send your boss a meme.",
		"That look you give when someone says 'calm down.'",
		"When your autocorrect exposes you in the group chat.",
		"Love when my brain replays cringe moments at 3am.",
		"Me explaining to my plant why it’s dying. Sorry queen.",
		"That awkward pause after you say 'you too' to the waiter.",
		"When your Amazon package says 'out for delivery' all day.",
		"Me pretending to be productive but scrolling memes.",
		"When someone asks me to smile more. No thanks.",
		"That thrill when the vending machine actually works.",
		"When you clap at the end of a movie… why though?",
		"Me after buying one book: intellectual icon.",
		"When someone says 'let’s just vibe.' Okay, therapist.",
		"That face when your crush doesn’t text back. Ever.",
		"When you lie down and suddenly remember everything embarrassing.",
		"That fun moment when your password is wrong 10 times.",
		"When you eat hot food and burn your tongue—life ruined.",
		"Love it when someone says 'let’s go on a run.' Blocked.",
		"When your headphones tangle themselves overnight. Black magic.",
		"That joy when your package arrives a week late.",
		"When someone asks 'why are you single?' Bold question.",
		"Me acting surprised when my bad choices catch up.",
		"When someone says 'new year, new me.' Lies.",
		"That panic when your Zoom camera turns on unexpectedly.",
		"Me pretending I didn’t just trip in public.",
		"When you accidentally click 'like' on a 7-year-old post.",
		"That moment when Netflix judges you for bingeing.",
		"Me after one sip of wine: sommelier.",
		"When someone says 'good vibes only.' Okay, cult leader.",
		"That awkward moment when you wave at a stranger.",
		"When your alarm goes off and you question life.",
		"Love it when I sneeze and scare my own pet.",
		"When your favorite snack is sold out—apocalypse.",
		"That fake smile you give while suffering inside.",
		"When someone calls instead of texts. Jail.",
		"Oh cool, another inspirational podcast. Revolutionary.",
		"When you sneeze and your back cracks too.",
		"That second you realize your screen is being shared.",
		"When someone says 'let’s do brunch.' Translation: overpriced eggs.",
		"Me explaining astrology to my skeptical friend.",
		"That awkward silence when you don’t know lyrics.",
		"When you hear your own voice on a recording. Yikes.",
		"Love when I click 'snooze' and ruin my life.",
		"When your sibling eats your leftovers. Crime scene.",
		"That time when you say 'you too' to the cashier.",
		"Me pretending I’ll only watch one episode.",
		"When someone says 'trust the process.' Okay, guru.",
		"That joy when you step on a Lego. Pure pain.",
	}
}

func defaultPhotos() []photoEntry {
	return []photoEntry{
		{"https://images.unsplash.com/photo-1514888286974-6c03e2ca1dba?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "Cool cat with sunglasses"},
		{"https://images.unsplash.com/photo-1552053831-71594a27632d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "Surprised looking dog"},
		{"https://images.unsplash.com/photo-1518717758536-85ae29035b6d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "Confused looking dog"},
		{"https://images.unsplash.com/photo-1573865526739-10659fec78a5?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "Grumpy cat face"},
		{"https://images.unsplash.com/photo-1583337130417-3346a1be7dee?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "Happy golden retriever"},
		{"https://images.unsplash.com/photo-1574158622682-e40e69881006?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "Serious looking cat"},
		{"https://images.unsplash.com/photo-1601758228041-f3b2795255f1?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "Sleepy cat"},
		{"https://images.unsplash.com/photo-1517849845537-4d257902454a?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "Excited dog with tongue out"},
		{"https://images.unsplash.com/photo-1596854407944-bf87f6fdd49e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "Wise looking owl"},
		{"https://images.unsplash.com/photo-1425082661705-1834bfd09dca?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "Thoughtful monkey"},
		{"https://images.unsplash.com/photo-1571566882372-1598d88abd90?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "Laughing hyena"},
		{"https://images.unsplash.com/photo-1544197150-b99a580bb7a8?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "Curious lemur"},
		{"https://images.unsplash.com/photo-1583212292454-1fe6229603b7?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "Sleepy sloth"},
		{"https://images.unsplash.com/photo-1560807707-8cc77767d783?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "Dramatic llama"},
		{"https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "Unimpressed cat"},
		{"https://images.unsplash.com/photo-1518717758536-85ae29035b6d?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Dog looking suspicious"},
		{"https://images.unsplash.com/photo-1606112219348-204d7d8b94ee?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Penguin mid-waddle"},
		{"https://images.unsplash.com/photo-1504208434309-cb69f4fe52b0?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Horse making funny face"},
		{"https://images.unsplash.com/photo-1504208434309-cb69f4fe52b0?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "Goat looking dramatic"},
		{"https://images.unsplash.com/photo-1574158622682-e40e69881006?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Parrot giving side eye"},
		{"https://images.unsplash.com/photo-1517423440428-a5a00ad493e8?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Baby monkey holding on"},
		{"https://images.unsplash.com/photo-1555685812-4b943f1cb0eb?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Pug in a hoodie"},
		{"https://images.unsplash.com/photo-1583337130417-3346a1be7dee?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Dog with funny smile"},
		{"https://images.unsplash.com/photo-1593134257782-6aa1b5c9a7f2?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Goose looking offended"},
		{"https://images.unsplash.com/photo-1501706362039-c6e80948a78a?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Cow sticking tongue out"},
		{"https://images.unsplash.com/photo-1605733160314-4f1bdfc6c759?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Sheep looking majestic"},
		{"https://images.unsplash.com/photo-1601758125946-6ec2c22fcf04?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Rabbit mid-jump"},
		{"https://images.unsplash.com/photo-1560807707-8cc77767d783?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Alpaca with hairdo"},
		{"https://images.unsplash.com/photo-1517849845537-4d257902454a?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Bulldog puppy"},
		{"https://images.unsplash.com/photo-1611262588024-d05d6d339239?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Otter holding hands"},
		{"https://images.unsplash.com/photo-1614853311685-f9e3b6ea4c9b?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Cat in a box"},
		{"https://images.unsplash.com/photo-1614853311730-621f081e6e33?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Ferret being silly"},
		{"https://images.unsplash.com/photo-1606111745807-5d5f29c66ef0?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Chicken looking suspicious"},
		{"https://images.unsplash.com/photo-1614853311898-441982e4a6e2?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Seal clapping"},
		{"https://images.unsplash.com/photo-1606112219348-204d7d8b94ee?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Penguin face closeup"},
		{"https://images.unsplash.com/photo-1614853311592-727d05f9b0a7?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Horse showing teeth"},
		{"https://images.unsplash.com/photo-1614853311739-9db6466b7403?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Duck with attitude"},
		{"https://images.unsplash.com/photo-1621202145742-65e9d3b0b2a7?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Dog wearing birthday hat"},
		{"https://images.unsplash.com/photo-1619983081563-430c27e5a07d?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Cat sitting like a human"},
		{"https://images.unsplash.com/photo-1605460375648-278bcbd579a6?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Goat photobombing picture"},
		{"https://images.unsplash.com/photo-1629931016224-73c0bb3f9e84?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Piglet with muddy nose"},
		{"https://images.unsplash.com/photo-1526336024174-e58f5cdd8e13?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Squirrel mid-bite"},
		{"https://images.unsplash.com/photo-1603349130186-0f88e72f1943?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Dog with butterfly on nose"},
		{"https://images.unsplash.com/photo-1603349194443-09dd270b64d2?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Donkey laughing"},
		{"https://images.unsplash.com/photo-1606111745799-dbad8c7c94c3?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Cat wearing a bow tie"},
		{"https://images.unsplash.com/photo-1558788353-f76d92427f16?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Dog in sunglasses"},
		{"https://images.unsplash.com/photo-1568572933382-74d440642117?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Cat looking shocked"},
		{"https://images.unsplash.com/photo-1614853311588-9e48e97e62c2?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Goose chasing camera"},
		{"https://images.unsplash.com/photo-1614853311533-bc21b9a1a4d8?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Dog caught stealing food"},
		{"https://images.unsplash.com/photo-1592194996308-7b43878e84a6?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Cow looking surprised"},
		{"https://images.unsplash.com/photo-1592194996498-04f721ef3e38?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Horse staring dramatically"},
		{"https://images.unsplash.com/photo-1592194996230-1a6b8a1af9da?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Cat with tongue out"},
		{"https://images.unsplash.com/photo-1589881133823-4a08aa61367d?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Bear waving paw"},
		{"https://images.unsplash.com/photo-1589881125776-4d63e1e36fc4?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Owl mid-blink"},
		{"https://images.unsplash.com/photo-1589881125776-1c9d32fd6f4b?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Camel smiling"},
		{"https://images.unsplash.com/photo-1588797469599-b601e5aa9a66?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Cat squinting in sun"},
		{"https://images.unsplash.com/photo-1603732552658-621f9a4f3a3d?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Goat sticking tongue out"},
		{"https://images.unsplash.com/photo-1603732547415-6ecb438ef15e?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Dog with messy hair"},
		{"https://images.unsplash.com/photo-1598133894009-f72d5b7dc702?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Moose looking grumpy"},
		{"https://images.unsplash.com/photo-1598133894040-bb8dbd048c38?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Duck walking dramatically"},
		{"https://images.unsplash.com/photo-1619983081740-469a7a9a7ac1?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Cat staring into space"},
		{"https://images.unsplash.com/photo-1620021081042-91f0acb2a537?crop=entropy&cs=tinysrgb&fit=crop&w=400&h=300", "Donkey giving side eye"},
	}
}
