package rhome

// Locate exposes the OS-parameterized probe for tests.
var Locate = locate
