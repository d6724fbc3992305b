package main

import (
	"flag"
	"fmt"
	"os"

	"conjure/construct"
	"conjure/logging"
	"conjure/registry"
	"conjure/samples"

	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logging.NewWithLevel("conjure", cfg.LogLevel)
	if err := run(cfg, log); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cfg demoConfig, log logging.Logger) error {
	reg := registry.New().WithLogger(log)
	reg.OnConstructed(func(c registry.Constructed) {
		log.Infof("constructed %q instance (factory %s)", c.Name, c.FactoryID)
	})

	tracked := samples.Tracked()
	factories := map[string]*construct.Factory{
		"counter":     samples.Counter(),
		"accumulator": samples.Accumulator(),
		"greeter":     samples.Greeter(),
		"tracked":     tracked,
	}
	for name, f := range factories {
		if err := reg.Register(name, f); err != nil {
			return err
		}
	}

	// Counters concurrently: every construction carries its own private
	// state, so each instance counts from 1.
	var group errgroup.Group
	for i := 0; i < cfg.Instances; i++ {
		group.Go(func() error {
			inst, err := reg.Construct("counter")
			if err != nil {
				return err
			}
			next, ok := construct.MemberAs[func() int](inst, "next")
			if !ok {
				return fmt.Errorf("counter instance exposes no next member")
			}
			if got := next(); got != 1 {
				return fmt.Errorf("fresh counter returned %d, expected 1", got)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	// Tracked serially: the factory-local counter is unsynchronized.
	for i := 0; i < cfg.Instances; i++ {
		if _, err := reg.Construct("tracked"); err != nil {
			return err
		}
	}
	log.Infof("tracked factory constructed %d instance(s)", samples.TrackedCount(tracked))

	for _, name := range cfg.Greet {
		inst, err := reg.Construct("greeter", name)
		if err != nil {
			return err
		}
		greet, ok := construct.MemberAs[func() string](inst, "greet")
		if !ok {
			return fmt.Errorf("greeter instance exposes no greet member")
		}
		log.Infof("%s", greet())
	}

	seed := make([]any, 0, len(cfg.Seed))
	for _, v := range cfg.Seed {
		seed = append(seed, v)
	}
	inst, err := reg.Construct("accumulator", seed...)
	if err != nil {
		return err
	}
	total, ok := construct.MemberAs[func() float64](inst, "total")
	if !ok {
		return fmt.Errorf("accumulator instance exposes no total member")
	}
	log.Infof("accumulator seeded to %.2f", total())
	return nil
}
