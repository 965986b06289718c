/*
Package service implements the legacy-shape service/field manifest
consulted by the query path: configurable per-service metadata (DB
type, fulltext/thumbnail capability, key-metadata fields) and
per-field metadata (data type, weight, flags), plus the mime-to-service
mapping used to pick which inverted index a query targets.
*/
package service
