//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

// ExcludedAuthors - catalog names that match a roster query but belong to someone else
var ExcludedAuthors = []string{
	"Herr, Charlotte Bronte",
	"Stark, James Henry",
	"Schmitz, James Henry",
	"Maine, Henry James Sumner, Sir",
}

// ExcludedTitles - anything whose title contains one of these is dropped
var ExcludedTitles = []string{
	"Gutenberg",

	// poems
	"Poems",
	"Ballads",
	"Lyrics",
	"Verses",
	"Marmion: A Tale Of Flodden Field",
	"The Lady of the Lake",
	"The Mahogany Tree",
	"Richard Coeur de Lion and Blondel",
	"The Loving Ballad of Lord Bateman",

	// biographical
	"Letters",
	"Speeches",
	"literary and scientific men",
	"Biographical Notes",
	"My Memoirs",
	"The Memoirs of Victor Hugo",
	"An Autobiography of Anthony Trollope",
	"The trial of Emile Zola",
	"The George Sand-Gustave Flaubert Letters",

	// duplicates
	"Les Misérables, v. 1/5: Fantine",
	"The Grand Inquisitor",
	"Fathers and Children",
	"The Charterhouse of Parma, Volume",
	"Madame Bovary: A Tale of Provincial Life",
	"Home Life in Russia",
}
