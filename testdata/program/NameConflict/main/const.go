package main

const TestFirst = "taken"
