package config

type Assistant struct {
	Prompt string `env:"PROMPT" envDefault:"> "`
	// ContactsFile enables loading and saving the contact book when set
	ContactsFile string `env:"CONTACTS_FILE,expand"`
}

type Cats struct {
	Output string `env:"OUTPUT" envDefault:"text"`
}

type Tree struct {
	// Color is one of "auto", "always" or "never"
	Color string `env:"COLOR" envDefault:"auto"`
	Sizes bool   `env:"SIZES" envDefault:"false"`
}
