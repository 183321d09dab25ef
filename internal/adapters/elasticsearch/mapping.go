package elasticsearch

// CacheIndexMapping defines the mapping of the cache index. One document is
// stored per cache key; the value is the encoded collection and is not searchable.
const CacheIndexMapping = `{
  "settings": {
    "number_of_shards": 1,
    "number_of_replicas": 1
  },
  "mappings": {
    "dynamic": "strict",
    "properties": {
      "key": {
        "type": "keyword"
      },
      "value": {
        "type": "binary"
      },
      "updatedAt": {
        "type": "date"
      }
    }
  }
}`
