/*
Package config loads urlgen job files.

# Overview

A job names the templates to expand and the expander settings to use. Jobs
are written in YAML or JSON:

	templates:
	  - https://example.com/[1-3]/page[01-10]
	  - https://example.com/search?q={red|green|blue}
	empty_policy: collapse
	max_results: 10000
	log_level: debug
	store: ./batches.db

# File Loading

	job, err := config.FromFile("job.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	if err := job.Validate(); err != nil {
	    log.Fatal(err)
	}

	exp := urlgen.New(job.ExpanderOptions()...)

FromYAML and FromJSON parse bytes directly. Unknown keys are ignored.
*/
package config
