package vocab

import "github.com/example/wortbot/pkg/models"

// SeedWords is the built-in starter vocabulary used when the database holds
// no imported catalog yet.
var SeedWords = []models.VocabularyItem{
	// A1
	{German: "Hallo", English: "hello", Pronunciation: "HA-lo", Example: "Hallo, wie geht es dir?", ExampleTranslation: "Hello, how are you?", Category: "greetings", Level: models.LevelA1, Frequency: 1, WordType: "interjection"},
	{German: "danke", English: "thank you", Pronunciation: "DAN-ke", Example: "Danke für deine Hilfe!", ExampleTranslation: "Thank you for your help!", Category: "greetings", Level: models.LevelA1, Frequency: 1, WordType: "interjection"},
	{German: "bitte", English: "please", Pronunciation: "BI-te", Example: "Ein Kaffee, bitte.", ExampleTranslation: "A coffee, please.", Category: "greetings", Level: models.LevelA1, Frequency: 1, WordType: "adverb"},
	{German: "ja", English: "yes", Pronunciation: "ya", Example: "Ja, das stimmt.", ExampleTranslation: "Yes, that is right.", Category: "basic", Level: models.LevelA1, Frequency: 1, WordType: "adverb"},
	{German: "nein", English: "no", Pronunciation: "nine", Example: "Nein, ich habe keine Zeit.", ExampleTranslation: "No, I have no time.", Category: "basic", Level: models.LevelA1, Frequency: 1, WordType: "adverb"},
	{German: "das Haus", English: "house", Pronunciation: "hows", Example: "Das Haus ist groß.", ExampleTranslation: "The house is big.", Category: "home", Level: models.LevelA1, Frequency: 2, WordType: "noun"},
	{German: "das Wasser", English: "water", Pronunciation: "VA-ser", Example: "Ich trinke Wasser.", ExampleTranslation: "I drink water.", Category: "food", Level: models.LevelA1, Frequency: 1, WordType: "noun"},
	{German: "das Brot", English: "bread", Pronunciation: "broht", Example: "Das Brot ist frisch.", ExampleTranslation: "The bread is fresh.", Category: "food", Level: models.LevelA1, Frequency: 2, WordType: "noun"},
	{German: "der Mann", English: "man", Pronunciation: "mahn", Example: "Der Mann liest eine Zeitung.", ExampleTranslation: "The man reads a newspaper.", Category: "people", Level: models.LevelA1, Frequency: 1, WordType: "noun"},
	{German: "die Frau", English: "woman", Pronunciation: "frow", Example: "Die Frau arbeitet hier.", ExampleTranslation: "The woman works here.", Category: "people", Level: models.LevelA1, Frequency: 1, WordType: "noun"},
	{German: "das Kind", English: "child", Pronunciation: "kint", Example: "Das Kind spielt im Garten.", ExampleTranslation: "The child plays in the garden.", Category: "people", Level: models.LevelA1, Frequency: 1, WordType: "noun"},
	{German: "gehen", English: "to go", Pronunciation: "GAY-en", Example: "Wir gehen nach Hause.", ExampleTranslation: "We are going home.", Category: "movement", Level: models.LevelA1, Frequency: 1, WordType: "verb"},
	{German: "kommen", English: "to come", Pronunciation: "KO-men", Example: "Kommst du mit?", ExampleTranslation: "Are you coming along?", Category: "movement", Level: models.LevelA1, Frequency: 1, WordType: "verb"},
	{German: "essen", English: "to eat", Pronunciation: "E-sen", Example: "Wir essen um sieben Uhr.", ExampleTranslation: "We eat at seven o'clock.", Category: "food", Level: models.LevelA1, Frequency: 1, WordType: "verb"},
	{German: "trinken", English: "to drink", Pronunciation: "TRIN-ken", Example: "Was möchtest du trinken?", ExampleTranslation: "What would you like to drink?", Category: "food", Level: models.LevelA1, Frequency: 2, WordType: "verb"},
	{German: "gut", English: "good", Pronunciation: "goot", Example: "Das Essen ist gut.", ExampleTranslation: "The food is good.", Category: "basic", Level: models.LevelA1, Frequency: 1, WordType: "adjective"},
	{German: "groß", English: "big", Pronunciation: "grohs", Example: "Berlin ist eine große Stadt.", ExampleTranslation: "Berlin is a big city.", Category: "basic", Level: models.LevelA1, Frequency: 2, WordType: "adjective"},
	{German: "klein", English: "small", Pronunciation: "kline", Example: "Mein Zimmer ist klein.", ExampleTranslation: "My room is small.", Category: "basic", Level: models.LevelA1, Frequency: 2, WordType: "adjective"},
	{German: "heute", English: "today", Pronunciation: "HOY-te", Example: "Heute ist Montag.", ExampleTranslation: "Today is Monday.", Category: "time", Level: models.LevelA1, Frequency: 1, WordType: "adverb"},
	{German: "morgen", English: "tomorrow", Pronunciation: "MOR-gen", Example: "Morgen habe ich frei.", ExampleTranslation: "Tomorrow I have the day off.", Category: "time", Level: models.LevelA1, Frequency: 2, WordType: "adverb"},

	// A2
	{German: "die Wohnung", English: "apartment", Pronunciation: "VOH-nung", Example: "Die Wohnung hat drei Zimmer.", ExampleTranslation: "The apartment has three rooms.", Category: "home", Level: models.LevelA2, Frequency: 2, WordType: "noun"},
	{German: "der Bahnhof", English: "train station", Pronunciation: "BAHN-hohf", Example: "Der Bahnhof ist in der Nähe.", ExampleTranslation: "The train station is nearby.", Category: "travel", Level: models.LevelA2, Frequency: 3, WordType: "noun"},
	{German: "die Rechnung", English: "bill", Pronunciation: "RECH-nung", Example: "Die Rechnung, bitte!", ExampleTranslation: "The bill, please!", Category: "food", Level: models.LevelA2, Frequency: 3, WordType: "noun"},
	{German: "der Termin", English: "appointment", Pronunciation: "ter-MEEN", Example: "Ich habe morgen einen Termin.", ExampleTranslation: "I have an appointment tomorrow.", Category: "work", Level: models.LevelA2, Frequency: 3, WordType: "noun"},
	{German: "das Wetter", English: "weather", Pronunciation: "VE-ter", Example: "Das Wetter ist heute schön.", ExampleTranslation: "The weather is nice today.", Category: "nature", Level: models.LevelA2, Frequency: 2, WordType: "noun"},
	{German: "bezahlen", English: "to pay", Pronunciation: "be-TSAH-len", Example: "Kann ich mit Karte bezahlen?", ExampleTranslation: "Can I pay by card?", Category: "shopping", Level: models.LevelA2, Frequency: 2, WordType: "verb"},
	{German: "verstehen", English: "to understand", Pronunciation: "fer-SHTAY-en", Example: "Ich verstehe die Frage nicht.", ExampleTranslation: "I don't understand the question.", Category: "communication", Level: models.LevelA2, Frequency: 2, WordType: "verb"},
	{German: "erklären", English: "to explain", Pronunciation: "er-KLAI-ren", Example: "Können Sie das erklären?", ExampleTranslation: "Can you explain that?", Category: "communication", Level: models.LevelA2, Frequency: 3, WordType: "verb"},
	{German: "einkaufen", English: "to shop", Pronunciation: "INE-kow-fen", Example: "Wir kaufen am Samstag ein.", ExampleTranslation: "We shop on Saturday.", Category: "shopping", Level: models.LevelA2, Frequency: 3, WordType: "verb"},
	{German: "müde", English: "tired", Pronunciation: "MUE-de", Example: "Nach der Arbeit bin ich müde.", ExampleTranslation: "After work I am tired.", Category: "feelings", Level: models.LevelA2, Frequency: 2, WordType: "adjective"},
	{German: "wichtig", English: "important", Pronunciation: "VICH-tich", Example: "Das ist eine wichtige Frage.", ExampleTranslation: "That is an important question.", Category: "basic", Level: models.LevelA2, Frequency: 2, WordType: "adjective"},
	{German: "gemütlich", English: "cozy", Pronunciation: "ge-MUET-lich", Example: "Das Café ist sehr gemütlich.", ExampleTranslation: "The café is very cozy.", Category: "home", Level: models.LevelA2, Frequency: 4, WordType: "adjective"},
	{German: "leider", English: "unfortunately", Pronunciation: "LY-der", Example: "Leider habe ich keine Zeit.", ExampleTranslation: "Unfortunately I have no time.", Category: "basic", Level: models.LevelA2, Frequency: 3, WordType: "adverb"},
	{German: "zusammen", English: "together", Pronunciation: "tsu-ZA-men", Example: "Wir lernen zusammen Deutsch.", ExampleTranslation: "We learn German together.", Category: "basic", Level: models.LevelA2, Frequency: 2, WordType: "adverb"},

	// B1
	{German: "die Erfahrung", English: "experience", Pronunciation: "er-FAH-rung", Example: "Sie hat viel Erfahrung in diesem Beruf.", ExampleTranslation: "She has a lot of experience in this profession.", Category: "work", Level: models.LevelB1, Frequency: 3, WordType: "noun"},
	{German: "die Umwelt", English: "environment", Pronunciation: "UM-velt", Example: "Wir müssen die Umwelt schützen.", ExampleTranslation: "We must protect the environment.", Category: "nature", Level: models.LevelB1, Frequency: 3, WordType: "noun"},
	{German: "der Vorschlag", English: "suggestion", Pronunciation: "FOR-shlahk", Example: "Das ist ein guter Vorschlag.", ExampleTranslation: "That is a good suggestion.", Category: "communication", Level: models.LevelB1, Frequency: 4, WordType: "noun"},
	{German: "die Voraussetzung", English: "prerequisite", Pronunciation: "fo-ROWS-zet-sung", Example: "Gute Deutschkenntnisse sind eine Voraussetzung.", ExampleTranslation: "Good German skills are a prerequisite.", Category: "work", Level: models.LevelB1, Frequency: 5, WordType: "noun"},
	{German: "entscheiden", English: "to decide", Pronunciation: "ent-SHY-den", Example: "Du musst dich heute entscheiden.", ExampleTranslation: "You have to decide today.", Category: "communication", Level: models.LevelB1, Frequency: 3, WordType: "verb"},
	{German: "vorschlagen", English: "to suggest", Pronunciation: "FOR-shlah-gen", Example: "Ich schlage vor, dass wir früher anfangen.", ExampleTranslation: "I suggest that we start earlier.", Category: "communication", Level: models.LevelB1, Frequency: 4, WordType: "verb"},
	{German: "sich bewerben", English: "to apply", Pronunciation: "be-VER-ben", Example: "Er bewirbt sich um die Stelle.", ExampleTranslation: "He is applying for the position.", Category: "work", Level: models.LevelB1, Frequency: 4, WordType: "verb"},
	{German: "zuverlässig", English: "reliable", Pronunciation: "TSOO-fer-le-sich", Example: "Sie ist eine zuverlässige Kollegin.", ExampleTranslation: "She is a reliable colleague.", Category: "work", Level: models.LevelB1, Frequency: 4, WordType: "adjective"},
	{German: "anspruchsvoll", English: "demanding", Pronunciation: "AN-shpruchs-fol", Example: "Die Aufgabe ist anspruchsvoll.", ExampleTranslation: "The task is demanding.", Category: "work", Level: models.LevelB1, Frequency: 5, WordType: "adjective"},
	{German: "allerdings", English: "however", Pronunciation: "a-ler-DINGS", Example: "Das stimmt, allerdings gibt es Ausnahmen.", ExampleTranslation: "That is true, however there are exceptions.", Category: "basic", Level: models.LevelB1, Frequency: 4, WordType: "adverb"},

	// B2
	{German: "die Herausforderung", English: "challenge", Pronunciation: "he-ROWS-for-de-rung", Example: "Das Projekt ist eine große Herausforderung.", ExampleTranslation: "The project is a big challenge.", Category: "work", Level: models.LevelB2, Frequency: 4, WordType: "noun"},
	{German: "die Nachhaltigkeit", English: "sustainability", Pronunciation: "NACH-hal-tich-kite", Example: "Nachhaltigkeit spielt eine immer größere Rolle.", ExampleTranslation: "Sustainability plays an ever greater role.", Category: "nature", Level: models.LevelB2, Frequency: 5, WordType: "noun"},
	{German: "die Auseinandersetzung", English: "dispute", Pronunciation: "ows-ine-AN-der-zet-sung", Example: "Die Auseinandersetzung dauerte Stunden.", ExampleTranslation: "The dispute lasted for hours.", Category: "communication", Level: models.LevelB2, Frequency: 6, WordType: "noun"},
	{German: "gewährleisten", English: "to guarantee", Pronunciation: "ge-VAIR-ly-sten", Example: "Wir gewährleisten die Sicherheit der Daten.", ExampleTranslation: "We guarantee the security of the data.", Category: "work", Level: models.LevelB2, Frequency: 6, WordType: "verb"},
	{German: "beeinträchtigen", English: "to impair", Pronunciation: "be-INE-trech-ti-gen", Example: "Lärm kann die Konzentration beeinträchtigen.", ExampleTranslation: "Noise can impair concentration.", Category: "nature", Level: models.LevelB2, Frequency: 6, WordType: "verb"},
	{German: "umstritten", English: "controversial", Pronunciation: "um-SHTRI-ten", Example: "Die Entscheidung ist umstritten.", ExampleTranslation: "The decision is controversial.", Category: "communication", Level: models.LevelB2, Frequency: 5, WordType: "adjective"},
	{German: "unverzichtbar", English: "indispensable", Pronunciation: "un-fer-TSICHT-bar", Example: "Gute Planung ist unverzichtbar.", ExampleTranslation: "Good planning is indispensable.", Category: "work", Level: models.LevelB2, Frequency: 6, WordType: "adjective"},
	{German: "infolgedessen", English: "consequently", Pronunciation: "in-FOL-ge-de-sen", Example: "Der Zug fiel aus, infolgedessen kam sie zu spät.", ExampleTranslation: "The train was cancelled, consequently she was late.", Category: "basic", Level: models.LevelB2, Frequency: 7, WordType: "adverb"},
}

// EnsureSeeded inserts the built-in vocabulary when the repository is empty.
func EnsureSeeded() error {
	repo := NewRepository()
	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, item := range SeedWords {
		if err := repo.Upsert(item); err != nil {
			return err
		}
	}
	return nil
}
