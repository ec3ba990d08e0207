// Package harness runs scripted phonebook sessions and checks their outcome.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: add_then_search
//	description: "Adding a record makes it searchable"
//	backend: csv            # optional, csv (default) or sqlite
//	records:                # optional seed Directory
//	  - surname: Ivanov
//	    first_name: Ivan
//	    patronymic: Ivanovich
//	    organization: Acme
//	    work_phone: "(495) 123-45-67"
//	    personal_phone: "(916) 765-43-21"
//	input:                  # one answer per prompt, in order
//	  - "4"
//	  - "acme"
//	  - "6"
//	assertions:
//	  - type: output_contains
//	    text: "Search results:"
//	  - type: record_count
//	    count: 1
//
// # Assertion Types
//
//   - output_contains: the transcript contains text
//   - output_not_contains: the transcript does not contain text
//   - record_count: the persisted Directory has exactly count records
//   - record_at: the persisted record at index equals record
//
// # Deterministic Testing
//
// Every scenario runs against a fresh backing file in a temporary directory
// with a fixed session id, so transcripts are byte-identical across runs and
// can be compared with golden files (see RunWithGolden).
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/search.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if !result.Pass {
//	    for _, e := range result.Errors {
//	        log.Println(e)
//	    }
//	}
package harness
