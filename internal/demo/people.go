package demo

import (
	"context"

	"github.com/alextanhongpin/lambda/internal/people"
	"github.com/alextanhongpin/lambda/internal/words"
)

func People(ctx context.Context, env *Env) error {
	p := &printer{w: env.Out}

	roster := people.Roster()
	for _, person := range roster {
		p.Println(person)
	}

	p.Printf("in New York and older than 25: %v\n", people.NamesIn(roster, "New York", 25))

	avg := people.AverageAgeByCity(roster)
	for _, city := range people.Cities(roster) {
		p.Printf("average age in %s: %.1f\n", city, avg[city])
	}

	return p.err
}

func File(ctx context.Context, env *Env) error {
	cfg := env.Config.Words

	long, err := words.ReadFile(cfg.DataFile, cfg.MinLength)
	if err != nil {
		return err
	}

	p := &printer{w: env.Out}
	p.Println(long)

	return p.err
}
