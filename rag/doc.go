// Package rag retrieves documents across collections to ground a
// downstream answer or recommendation step. The pipeline embeds a query
// once, fans the search out over the requested collections, assembles a
// bounded context string with source citations and an aggregate
// confidence, and layers meal/ingredient recommendation scoring on top.
package rag
