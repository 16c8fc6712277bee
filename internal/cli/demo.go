package cli

import "github.com/aretw0/sift/pkg/schema"

// DemoForm is the built-in schema used when no schema file is given: a
// small evening-planning form with two constrained choices.
func DemoForm() *schema.Form {
	return schema.NewForm("stuff", "Let's plan your evening.",
		schema.NewSelection("do", "What do you want to do?",
			schema.NewOption("eat", "Have a meal", "I'm hungry", "something to eat"),
			schema.NewOption("drink", "Have a drink", "I'm thirsty"),
			schema.NewOption("sleep", "Take a nap", "I'm tired"),
		),
		schema.NewSelection("watch", "What do you want to watch?",
			schema.NewOption("bond", "A spy movie", "something with action"),
			schema.NewOption("alien", "A scary movie", "something scary"),
		),
	)
}
