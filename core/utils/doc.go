// Package utils provides common helpers for the bulk editor: conversion of
// loosely typed JSON scalars and the number formats used for prices (two
// decimals, decimal arithmetic) and quantities (integers).
package utils
