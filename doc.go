// Package qaforum is the data-access layer of a question and answer forum.
//
// A Forum bundles one repository per entity: users, questions, replies and
// the follow and like relations between users and questions. Each repository
// issues parameterized SQL through Bun and maps rows onto the types in the
// model package. Construct a Forum explicitly with New, or use Default to
// share one lazily opened store across the process:
//
//	forum, err := qaforum.Default()
//	if err != nil {
//		return err
//	}
//	users, err := forum.Users.FindByName(ctx, "Ada", "Lovelace")
//
// The package only reads. Schema creation and seed data live in the database
// package.
package qaforum
