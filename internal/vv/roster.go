//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

// RosterGroup - the authors of one nationality; order matters since it fixes the row order of every output
type RosterGroup struct {
	Nationality string
	Names       []string
}

// AuthorRoster - the authors to be collected
var AuthorRoster = []RosterGroup{
	{
		Nationality: "English",
		Names: []string{
			"Walter Scott",
			"Jane Austen",
			"Mary Shelley",
			"William Thackeray",
			"Charles Dickens",
			"Charlotte Bronte",
			"Emily Bronte",
			"George Eliot",
			"Anthony Trollope",
			"Thomas Hardy",
		},
	},
	{
		Nationality: "American",
		Names: []string{
			"Louisa May Alcott",
			"Nathaniel Hawthorne",
			"Herman Melville",
			"Mark Twain",
			"Henry James",
		},
	},
	{
		Nationality: "French",
		Names: []string{
			"Stendhal",
			"Alexander Dumas",
			"Victor Hugo",
			"Gustave Flaubert",
			"Honore de Balzac",
			"Emile Zola",
		},
	},
	{
		Nationality: "Russian",
		Names: []string{
			"Nikolai Gogol",
			"Ivan Turgenev",
			"Fyodor Dostoevsky",
			"Leo Tolstoy",
		},
	},
}
