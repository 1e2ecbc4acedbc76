// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch or persist
// data, abstracting SQL logic away from the service layer.
//
// Lookups that match nothing return (nil, nil); the service layer
// decides whether that is a 404.
package repository
