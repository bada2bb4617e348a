// Package text splits a document into word tokens and locates each token's
// occurrence in the document in reading order. A word is a maximal run of
// letters, digits and underscores; everything else separates words.
package text
