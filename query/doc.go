/*
Package query implements the text-search query tree described in the
ontology-driven semantic store specification: parsing an AND/OR/
implicit-AND search expression into a binary operator tree, evaluating
it against an inverted index with idf-weighted scoring, and shaping the
result into paginated, grouped hits.

A [Tree] is built once by [Parse] and then evaluated any number of
times against different [Index] implementations; it holds no reference
to a particular inverted index itself.
*/
package query
