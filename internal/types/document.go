package types

import "go.mongodb.org/mongo-driver/bson"

// Document is a schema-less source record. Field order is kept as read from
// the source so the destination record renders fields in the same order.
type Document = bson.D

// IDField is the identifier field of source documents
const IDField = "_id"

// DestinationIDField holds the string form of the source identifier in
// destination records
const DestinationIDField = "id"
