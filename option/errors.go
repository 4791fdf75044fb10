package option

import "errors"

// ErrEmptyName indicates an Option was built with an empty name.
var ErrEmptyName = errors.New("option: name is empty")

// ErrUnknownValueType indicates a ValueType outside the declared enumeration.
var ErrUnknownValueType = errors.New("option: unknown value type")

// ErrConversionFailed indicates a raw string could not be parsed into the
// option's declared ValueType.
var ErrConversionFailed = errors.New("option: conversion failed")

// ErrNotInDomain indicates a value was supplied for a discrete option but is
// absent from its enumerated domain.
var ErrNotInDomain = errors.New("option: value not in domain")

// ErrBelongingMismatch indicates an operation expected a different Belonging
// than the one the Option actually carries (e.g. a SETTINGS option handed a
// value list).
var ErrBelongingMismatch = errors.New("option: belonging mismatch")
